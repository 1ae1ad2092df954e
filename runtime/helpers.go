package surf

import "unicode/utf8"

// Require ensures that b has capacity for at least n additional bytes
// without reallocation. It returns a slice that shares the original
// contents and has sufficient capacity for appending n bytes.
func Require(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	nb := make([]byte, len(b), len(b)+n)
	copy(nb, b)
	return nb
}

// LiteralDelimiter reports whether u opens a character or string literal.
func LiteralDelimiter(u uint16) bool {
	return u == CharDelimiter || u == StringDelimiter
}

// IsLikelyLiteral reports whether b looks like a single SURF literal.
// It is a heuristic and not a validator:
//
//   - It requires the data to be valid UTF-8.
//   - It then checks that, ignoring surrounding ASCII whitespace, the
//     text starts and ends with the same delimiter.
func IsLikelyLiteral(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	i, j := 0, len(b)
	for i < j && isSpace(b[i]) {
		i++
	}
	for j > i && isSpace(b[j-1]) {
		j--
	}
	if j-i < EmptyLiteralSize {
		return false
	}
	return LiteralDelimiter(uint16(b[i])) && b[i] == b[j-1]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}
