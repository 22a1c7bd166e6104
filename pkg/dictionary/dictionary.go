// Package dictionary holds the table of known tag identifiers and their
// display names, loaded once from a comma-delimited definition file.
//
// The file starts with a header row, which is always discarded. Every later
// row must carry at least three fields ("tag,name,..."); shorter rows are
// ignored. Fields are not quoted or escaped.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

const (
	delimiter = ","
	minFields = 3
	maxLine   = 1 << 20
)

// ErrLoad is matched by errors.Is for every *LoadError.
var ErrLoad = errors.New("cannot load tag definitions")

// LoadError reports a definition source that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", ErrLoad, e.Err)
	}
	return fmt.Sprintf("%v from %s: %v", ErrLoad, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// Entry is one tag definition.
type Entry struct {
	Tag  string
	Name string
}

// Dictionary maps tag identifiers to display names.
// It is never modified after construction and may be shared between goroutines.
type Dictionary struct {
	names   *orderedmap.OrderedMap[string, string]
	skipped int
}

// New builds a dictionary from entries. A repeated tag keeps its first
// position but takes the last name.
func New(entries ...Entry) *Dictionary {
	d := &Dictionary{names: orderedmap.NewOrderedMap[string, string]()}
	for _, e := range entries {
		d.names.Set(e.Tag, e.Name)
	}
	return d
}

// Load reads the definition file at path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}
	return d, nil
}

// Read parses definitions from r. Nothing is returned if r fails midway.
func Read(r io.Reader) (*Dictionary, error) {
	d := New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLine)

	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}

		parts := strings.SplitN(scanner.Text(), delimiter, minFields)
		if len(parts) < minFields {
			d.skipped++
			continue
		}
		d.names.Set(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}

	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Err: err}
	}
	return d, nil
}

// Contains reports whether tag is defined. The comparison is case-sensitive.
func (d *Dictionary) Contains(tag string) bool {
	return d.names.Has(tag)
}

// Name returns the display name of tag.
func (d *Dictionary) Name(tag string) (string, bool) {
	return d.names.Get(tag)
}

// NameOr returns the display name of tag, or fallback when it is not defined.
func (d *Dictionary) NameOr(tag, fallback string) string {
	if name, ok := d.names.Get(tag); ok {
		return name
	}
	return fallback
}

// Len returns the number of distinct tags.
func (d *Dictionary) Len() int {
	return d.names.Len()
}

// Skipped returns how many data rows had fewer than three fields.
func (d *Dictionary) Skipped() int {
	return d.skipped
}

// Entries returns the definitions in the order their tags first appeared.
func (d *Dictionary) Entries() []Entry {
	entries := make([]Entry, 0, d.names.Len())
	for el := d.names.Front(); el != nil; el = el.Next() {
		entries = append(entries, Entry{Tag: el.Key, Name: el.Value})
	}
	return entries
}
