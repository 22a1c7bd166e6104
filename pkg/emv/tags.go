// Package emv carries EMV-specific knowledge about tags: a built-in table of
// common data element names and the classification encoded in a tag's first byte.
package emv

import (
	"github.com/bytePro05541/tlvParser/pkg/dictionary"
)

// standardTags lists common EMV data elements, grouped by who provides them.
var standardTags = []dictionary.Entry{
	// Card
	{Tag: "42", Name: "Issuer Identification Number (IIN)"},
	{Tag: "4F", Name: "Application Identifier (AID) - card"},
	{Tag: "50", Name: "Application Label"},
	{Tag: "57", Name: "Track 2 Equivalent Data"},
	{Tag: "5A", Name: "Application Primary Account Number (PAN)"},
	{Tag: "5F20", Name: "Cardholder Name"},
	{Tag: "5F24", Name: "Application Expiration Date"},
	{Tag: "5F25", Name: "Application Effective Date"},
	{Tag: "5F28", Name: "Issuer Country Code"},
	{Tag: "5F2D", Name: "Language Preference"},
	{Tag: "5F30", Name: "Service Code"},
	{Tag: "5F34", Name: "Application PAN Sequence Number"},
	{Tag: "5F50", Name: "Issuer URL"},
	{Tag: "61", Name: "Application Template"},
	{Tag: "6F", Name: "File Control Information (FCI) Template"},
	{Tag: "70", Name: "READ RECORD Response Message Template"},
	{Tag: "73", Name: "Directory Discretionary Template"},
	{Tag: "77", Name: "Response Message Template Format 2"},
	{Tag: "80", Name: "Response Message Template Format 1"},
	{Tag: "82", Name: "Application Interchange Profile"},
	{Tag: "84", Name: "Dedicated File (DF) Name"},
	{Tag: "87", Name: "Application Priority Indicator"},
	{Tag: "88", Name: "Short File Identifier (SFI)"},
	{Tag: "8C", Name: "Card Risk Management Data Object List 1 (CDOL1)"},
	{Tag: "8D", Name: "Card Risk Management Data Object List 2 (CDOL2)"},
	{Tag: "8E", Name: "Cardholder Verification Method (CVM) List"},
	{Tag: "8F", Name: "Certification Authority Public Key Index"},
	{Tag: "90", Name: "Issuer Public Key Certificate"},
	{Tag: "92", Name: "Issuer Public Key Remainder"},
	{Tag: "9D", Name: "Directory Definition File (DDF) Name"},
	{Tag: "A5", Name: "File Control Information (FCI) Proprietary Template"},
	{Tag: "BF0C", Name: "File Control Information (FCI) Issuer Discretionary Data"},
	{Tag: "9F07", Name: "Application Usage Control"},
	{Tag: "9F08", Name: "Application Version Number - card"},
	{Tag: "9F0C", Name: "Issuer Identification Number Extended"},
	{Tag: "9F0D", Name: "Issuer Action Code - Default"},
	{Tag: "9F0E", Name: "Issuer Action Code - Denial"},
	{Tag: "9F0F", Name: "Issuer Action Code - Online"},
	{Tag: "9F10", Name: "Issuer Application Data"},
	{Tag: "9F11", Name: "Issuer Code Table Index"},
	{Tag: "9F12", Name: "Application Preferred Name"},
	{Tag: "9F1F", Name: "Track 1 Discretionary Data"},
	{Tag: "9F26", Name: "Application Cryptogram"},
	{Tag: "9F27", Name: "Cryptogram Information Data"},
	{Tag: "9F36", Name: "Application Transaction Counter (ATC)"},
	{Tag: "9F38", Name: "Processing Options Data Object List (PDOL)"},
	{Tag: "9F42", Name: "Application Currency Code"},
	{Tag: "9F4D", Name: "Log Entry"},
	{Tag: "9F6E", Name: "Form Factor Indicator"},
	{Tag: "9F7C", Name: "Customer Exclusive Data"},

	// Terminal
	{Tag: "5F2A", Name: "Transaction Currency Code"},
	{Tag: "8A", Name: "Authorisation Response Code"},
	{Tag: "91", Name: "Issuer Authentication Data"},
	{Tag: "95", Name: "Terminal Verification Results"},
	{Tag: "9A", Name: "Transaction Date"},
	{Tag: "9B", Name: "Transaction Status Information"},
	{Tag: "9C", Name: "Transaction Type"},
	{Tag: "9F02", Name: "Amount, Authorised (Numeric)"},
	{Tag: "9F03", Name: "Amount, Other (Numeric)"},
	{Tag: "9F06", Name: "Application Identifier (AID) - terminal"},
	{Tag: "9F09", Name: "Application Version Number - terminal"},
	{Tag: "9F1A", Name: "Terminal Country Code"},
	{Tag: "9F1E", Name: "Interface Device (IFD) Serial Number"},
	{Tag: "9F21", Name: "Transaction Time"},
	{Tag: "9F33", Name: "Terminal Capabilities"},
	{Tag: "9F34", Name: "Cardholder Verification Method (CVM) Results"},
	{Tag: "9F35", Name: "Terminal Type"},
	{Tag: "9F37", Name: "Unpredictable Number"},
	{Tag: "9F39", Name: "Point-of-Service (POS) Entry Mode"},
	{Tag: "9F40", Name: "Additional Terminal Capabilities"},
	{Tag: "9F41", Name: "Transaction Sequence Counter"},
	{Tag: "9F66", Name: "Terminal Transaction Qualifiers (TTQ)"},

	// Kernel proprietary
	{Tag: "DF79", Name: "Kernel Version"},
}

// Tags returns a copy of the built-in definitions.
func Tags() []dictionary.Entry {
	return append([]dictionary.Entry(nil), standardTags...)
}

// Dictionary returns the built-in definitions as a dictionary.
// Every tag is upper-case; streams must use the same casing.
func Dictionary() *dictionary.Dictionary {
	return dictionary.New(standardTags...)
}
