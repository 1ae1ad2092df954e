package surf

import (
	"unicode"
	"unicode/utf8"
)

// EscapeMode selects how much of a literal is escaped beyond the
// required set. Modes may be combined.
type EscapeMode uint8

const (
	// EscapeMinimal escapes only what the format requires: the
	// delimiter, the required escapes, and code points that are not
	// directly printable.
	EscapeMinimal EscapeMode = 0
	// EscapeASCII additionally writes every code point >= 0x80 as \uHHHH,
	// using a surrogate pair for code points >= 0x10000.
	EscapeASCII EscapeMode = 1 << 0
	// EscapeSolidus writes the optional escape '/' as "\/".
	EscapeSolidus EscapeMode = 1 << 1
)

// needsUnicodeEscape reports whether r must be written as \uHHHH
// rather than as raw UTF-8.
func needsUnicodeEscape(r rune, mode EscapeMode) bool {
	switch {
	case r < 0x20, r == 0x7f:
		return true
	case r < utf8.RuneSelf:
		return false
	case mode&EscapeASCII != 0:
		return true
	case r >= surrHighMin && r <= surrLowMax:
		return true
	}
	return !unicode.IsPrint(r)
}

func validRune(r rune) rune {
	if r < 0 || r > maxCodePoint {
		return utf8.RuneError
	}
	return r
}

// AppendCodePoint appends the escaped form of a single code point as it
// appears inside a literal bounded by delim.
func AppendCodePoint(b []byte, r rune, delim uint16, mode EscapeMode) []byte {
	r = validRune(r)
	if r == rune(delim) {
		return utf8.AppendRune(append(b, byte(Escape)), r)
	}
	if m, ok := encodeEscapes[r]; ok {
		return append(b, byte(Escape), m)
	}
	if OptionalEscape(r) && mode&EscapeSolidus != 0 {
		return append(b, byte(Escape), byte(Solidus))
	}
	if needsUnicodeEscape(r, mode) {
		return appendUnicodeEscape(b, r)
	}
	return utf8.AppendRune(b, r)
}

// appendUnicodeEscape writes \uHHHH, or \uHHHH\uHHHH for r >= 0x10000.
func appendUnicodeEscape(b []byte, r rune) []byte {
	if r >= surrSelf {
		hi, lo := splitSurrogates(r)
		return appendHex4(appendHex4(b, hi), lo)
	}
	return appendHex4(b, uint16(r))
}

func appendHex4(b []byte, u uint16) []byte {
	return append(b, byte(Escape), byte(unicodeEscape),
		hexDigitsUpper[u>>12&0xf],
		hexDigitsUpper[u>>8&0xf],
		hexDigitsUpper[u>>4&0xf],
		hexDigitsUpper[u&0xf],
	)
}

// AppendLiteral appends s as a literal bounded by delim. The empty
// string encodes as the two delimiters with nothing between.
func AppendLiteral(b []byte, s string, delim uint16, mode EscapeMode) []byte {
	b = Require(b, LiteralSize(s, delim, mode))
	b = utf8.AppendRune(b, rune(delim))
	for _, r := range s {
		b = AppendCodePoint(b, r, delim, mode)
	}
	return utf8.AppendRune(b, rune(delim))
}

// AppendString appends s as a string literal.
func AppendString(b []byte, s string) []byte {
	return AppendLiteral(b, s, StringDelimiter, EscapeMinimal)
}

// AppendChar appends r as a character literal.
func AppendChar(b []byte, r rune) []byte {
	b = append(b, byte(CharDelimiter))
	b = AppendCodePoint(b, r, CharDelimiter, EscapeMinimal)
	return append(b, byte(CharDelimiter))
}

// charRune returns the single code point of a character literal value.
func charRune(s string) (rune, error) {
	switch utf8.RuneCountInString(s) {
	case 0:
		return 0, ErrEmptyChar
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	return 0, ErrCharTooLong
}

// EncodeLiteral returns s encoded as a literal bounded by delim.
func EncodeLiteral(s string, delim uint16) string {
	bb := GetMinSize(LiteralSize(s, delim, EscapeMinimal))
	defer PutByteBuffer(bb)
	bb.AppendLiteral(s, delim, EscapeMinimal)
	return string(bb.Bytes())
}
