package surf

import (
	"unicode/utf16"
	"unicode/utf8"
)

// isUTF8Valid validates UTF-8 for a byte slice before it is transcoded
// to code units.
var isUTF8Valid = func(b []byte) bool { return utf8.Valid(b) }

// UnitsFromBytes transcodes UTF-8 text to UTF-16 code units.
func UnitsFromBytes(b []byte) ([]uint16, error) {
	if !isUTF8Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return utf16.Encode([]rune(string(b))), nil
}

// UnitsString transcodes UTF-16 code units back to a Go string.
// Unpaired surrogates become U+FFFD.
func UnitsString(u []uint16) string { return string(utf16.Decode(u)) }
