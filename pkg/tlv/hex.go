package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex joins hex fragments into one stream, dropping spaces so fixtures can be
// written as "9F02 06 000000000600". Casing is kept as written.
// It panics if the result is not valid hex.
func Hex(parts ...string) string {
	cleanHex := strings.ReplaceAll(strings.Join(parts, ""), " ", "")

	if _, err := hex.DecodeString(cleanHex); err != nil {
		panic(fmt.Sprintf("invalid input '%s': %v", cleanHex, err))
	}
	return cleanHex
}
