package surf

import "unicode/utf8"

// Fixed encoded sizes, in bytes.
const (
	// DelimiterSize is the size of one ASCII delimiter.
	DelimiterSize = 1
	// MnemonicEscapeSize is the size of "\n" and friends.
	MnemonicEscapeSize = 2
	// UnicodeEscapeSize is the size of "\uHHHH".
	UnicodeEscapeSize = unicodeEscapeLen
	// SurrogatePairEscapeSize is the size of "\uHHHH\uHHHH".
	SurrogatePairEscapeSize = 2 * unicodeEscapeLen
	// EmptyLiteralSize is the size of "" or ''.
	EmptyLiteralSize = 2 * DelimiterSize
)

// CodePointSize returns the number of bytes AppendCodePoint writes for r.
func CodePointSize(r rune, delim uint16, mode EscapeMode) int {
	r = validRune(r)
	switch {
	case r == rune(delim):
		return 1 + utf8.RuneLen(r)
	case RequiresEscape(r):
		return MnemonicEscapeSize
	case OptionalEscape(r) && mode&EscapeSolidus != 0:
		return MnemonicEscapeSize
	case needsUnicodeEscape(r, mode):
		if r >= surrSelf {
			return SurrogatePairEscapeSize
		}
		return UnicodeEscapeSize
	}
	return utf8.RuneLen(r)
}

// LiteralSize returns the exact number of bytes AppendLiteral writes for s.
func LiteralSize(s string, delim uint16, mode EscapeMode) int {
	n := 2 * utf8.RuneLen(rune(delim))
	for _, r := range s {
		n += CodePointSize(r, delim, mode)
	}
	return n
}
