package cuid

import (
	"unicode"
	"unicode/utf8"
)

// IsCuid reports whether id has between MinLength and BigLength characters,
// all of them letters or digits.
func IsCuid(id string) bool {
	return IsCuidWithin(id, MinLength, BigLength)
}

// IsCuidWithin is IsCuid with explicit inclusive length bounds.
func IsCuidWithin(id string, minLength, maxLength int) bool {
	n := utf8.RuneCountInString(id)
	if n < minLength || n > maxLength {
		return false
	}
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
