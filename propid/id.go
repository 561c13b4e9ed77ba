// Package propid implements the identity contract that proposition
// implementors must satisfy: a validated, stable string identifier plus a
// best-effort factory for deriving one from arbitrary input.
package propid

import (
	"fmt"
	"strings"
	"unicode"
)

// ID is a validated proposition identifier. The zero value is not a valid
// ID; always obtain one through New or a Factory.
type ID struct {
	raw string
}

// String returns the underlying identifier text.
func (i ID) String() string { return i.raw }

// Raw is an explicit accessor for the underlying raw value.
func (i ID) Raw() string { return i.raw }

// ErrEmptyString is returned when New is given the empty string.
var ErrEmptyString = fmt.Errorf("proposition id: empty string")

// ErrContainsWhitespace is returned when New is given a string containing
// any whitespace rune.
var ErrContainsWhitespace = fmt.Errorf("proposition id: contains whitespace")

// InvalidCharactersError reports the offending characters found in an
// otherwise non-empty, whitespace-free candidate string.
type InvalidCharactersError struct {
	Chars []rune
}

func (e *InvalidCharactersError) Error() string {
	return fmt.Sprintf("proposition id: invalid characters %q", string(e.Chars))
}

// New validates s and returns an ID, or one of ErrEmptyString,
// ErrContainsWhitespace, or *InvalidCharactersError.
//
// A character is valid iff it is a Unicode letter, a decimal digit, or one
// of '_', '-', '.'.
func New(s string) (ID, error) {
	if s == "" {
		return ID{}, ErrEmptyString
	}
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return ID{}, ErrContainsWhitespace
	}
	var bad []rune
	for _, r := range s {
		if !validRune(r) {
			bad = append(bad, r)
		}
	}
	if len(bad) > 0 {
		return ID{}, &InvalidCharactersError{Chars: bad}
	}
	return ID{raw: s}, nil
}

// MustNew is New but panics on error; intended for package-level literal
// proposition IDs known to be valid at compile time.
func MustNew(s string) ID {
	id, err := New(s)
	if err != nil {
		panic(err)
	}
	return id
}

func validRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '_', '-', '.':
		return true
	}
	return false
}
