// This package is the lexical core for SURF, a compact textual
// resource-serialization format.
//
// It reads and writes SURF character and string literals. That covers
// escape sequences, \uHHHH escapes, and UTF-16 surrogate pairs. The
// document grammar (objects, collections, tags, numbers) is layered on
// top through the Marshaler and Unmarshaler interfaces.
//
// This package defines three "families" of functions:
//   - AppendXxxx() appends an escaped literal to a []byte.
//   - (*Reader).ReadXxxx() reads from an in-memory buffer of UTF-16 code units.
//   - (*Writer).WriteXxxx() writes to a pooled *ByteBuffer.
//
// A grammar that wants a literal opens it with
//
//	r.Expect(surf.StringDelimiter)
//
// and then drains it with
//
//	for cp, err := range r.CodePoints(surf.StringDelimiter) { ... }
package surf

import "errors"

// Delimiters and escape characters, as UTF-16 code units.
const (
	// CharDelimiter bounds a character literal: 'x'.
	CharDelimiter uint16 = '\''
	// StringDelimiter bounds a string literal: "xyz".
	StringDelimiter uint16 = '"'
	// Escape introduces an escape sequence.
	Escape uint16 = '\\'
	// Solidus is the only optional escape: both "/" and "\/" decode to '/'.
	Solidus uint16 = '/'

	unicodeEscape uint16 = 'u'
)

// EndOfLiteral is returned by ReadCodePoint in place of a code point
// once the closing delimiter has been consumed.
const EndOfLiteral rune = -1

// Char is a single code point that encodes as a character literal.
// A plain rune is an integer as far as Marshal is concerned.
type Char rune

// ErrEmptyChar is returned when a character literal has no code point.
var ErrEmptyChar = errors.New("surf: empty character literal")

// ErrCharTooLong is returned when a character literal value holds more
// than one code point.
var ErrCharTooLong = errors.New("surf: character literal holds more than one code point")

// ErrTrailingData is returned by Unmarshal when input remains after the value.
var ErrTrailingData = errors.New("surf: trailing data after value")

// decodeEscapes maps an escape mnemonic to the control character it stands for.
var decodeEscapes = map[uint16]rune{
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
}

// encodeEscapes is the inverse of decodeEscapes plus the escape character
// itself. Its keys are exactly the required-escape set.
var encodeEscapes = func() map[rune]byte {
	m := make(map[rune]byte, len(decodeEscapes)+1)
	for k, v := range decodeEscapes {
		m[v] = byte(k)
	}
	m[rune(Escape)] = byte(Escape)
	return m
}()

// RequiresEscape reports whether r must always be written in escaped
// form. A raw occurrence inside a literal is rejected by the decoder.
func RequiresEscape(r rune) bool {
	_, ok := encodeEscapes[r]
	return ok
}

// OptionalEscape reports whether r may be written either escaped or raw.
func OptionalEscape(r rune) bool {
	return r == rune(Solidus)
}
