package surf

import (
	"testing"
	"unicode/utf8"
)

func FuzzEncodeDecode(f *testing.F) {
	for _, s := range []string{"", "a", "\"'\\", "\n\t\v", "\x00\x7f", "café", "\U0001F600", "\U000E0001"} {
		f.Add(s, uint8(0))
	}
	f.Fuzz(func(t *testing.T, s string, mode uint8) {
		if !utf8.ValidString(s) {
			t.Skip()
		}
		m := EscapeMode(mode) & (EscapeASCII | EscapeSolidus)
		for _, delim := range []uint16{StringDelimiter, CharDelimiter} {
			enc := AppendLiteral(nil, s, delim, m)
			if len(enc) != LiteralSize(s, delim, m) {
				t.Fatalf("LiteralSize mismatch for %q", s)
			}
			r, err := NewReaderBytes(enc)
			if err != nil {
				t.Fatalf("encoded %q is not UTF-8: %v", s, err)
			}
			if _, err := r.Expect(delim); err != nil {
				t.Fatalf("open: %v", err)
			}
			got, err := r.ReadLiteralBody(delim)
			if err != nil {
				t.Fatalf("decode %s: %v", enc, err)
			}
			if got != s || !r.AtEnd() {
				t.Fatalf("round trip: got %q want %q", got, s)
			}
		}
	})
}

func FuzzReadLiteral(f *testing.F) {
	for _, s := range []string{`""`, `'x'`, `"\uD83D\uDE00"`, `"\uD83D"`, `"\q"`, `'`, `"\u12"`} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		r := NewReaderString(s)
		lit, err := r.ReadLiteral()
		if r.Offset() < 0 || r.Offset() > r.Len() {
			t.Fatalf("offset %d out of range [0, %d]", r.Offset(), r.Len())
		}
		if err != nil {
			return
		}
		// Anything that decodes re-encodes to something that decodes to the same value.
		enc := AppendLiteral(nil, lit.Value, lit.Delim, EscapeMinimal)
		var back Literal
		if err := Unmarshal(enc, &back); err != nil {
			t.Fatalf("re-decode %s: %v", enc, err)
		}
		if back.Value != lit.Value {
			t.Fatalf("re-decode: got %q want %q", back.Value, lit.Value)
		}
	})
}
