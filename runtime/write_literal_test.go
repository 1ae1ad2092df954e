package surf

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeEmpty(t *testing.T) {
	if got := EncodeLiteral("", StringDelimiter); got != `""` {
		t.Fatalf("empty string literal: got %q", got)
	}
	if got := EncodeLiteral("", CharDelimiter); got != `''` {
		t.Fatalf("empty char literal: got %q", got)
	}
	if got := AppendString(nil, ""); len(got) != EmptyLiteralSize {
		t.Fatalf("AppendString empty: got %q", got)
	}
}

func TestAppendLiteral(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		delim uint16
		mode  EscapeMode
		want  string
	}{
		{name: "plain", in: "hello", delim: StringDelimiter, want: `"hello"`},
		{name: "own delimiter", in: `a"b`, delim: StringDelimiter, want: `"a\"b"`},
		{name: "other delimiter raw", in: "it's", delim: StringDelimiter, want: `"it's"`},
		{name: "char delimiter", in: "'", delim: CharDelimiter, want: `'\''`},
		{name: "string delimiter in char", in: `"`, delim: CharDelimiter, want: `'"'`},
		{name: "escape character", in: `\`, delim: StringDelimiter, want: `"\\"`},
		{name: "mnemonics", in: "\b\f\n\r\t\v", delim: StringDelimiter, want: `"\b\f\n\r\t\v"`},
		{name: "nul", in: "\x00", delim: StringDelimiter, want: `"\u0000"`},
		{name: "other control", in: "\x1b", delim: StringDelimiter, want: `"\u001B"`},
		{name: "delete", in: "\x7f", delim: StringDelimiter, want: `"\u007F"`},
		{name: "latin-1 raw", in: "caf\u00e9", delim: StringDelimiter, want: "\"caf\u00e9\""},
		{name: "latin-1 ascii mode", in: "caf\u00e9", delim: StringDelimiter, mode: EscapeASCII, want: `"caf\u00E9"`},
		{name: "non-BMP raw", in: "\U0001F600", delim: StringDelimiter, want: "\"\U0001F600\""},
		{name: "non-BMP ascii mode", in: "\U0001F600", delim: StringDelimiter, mode: EscapeASCII, want: `"\uD83D\uDE00"`},
		{name: "nbsp not printable", in: "\u00a0", delim: StringDelimiter, want: `"\u00A0"`},
		{name: "C1 control", in: "\u0085", delim: StringDelimiter, want: `"\u0085"`},
		{name: "non-printable non-BMP", in: "\U000E0001", delim: StringDelimiter, want: `"\uDB40\uDC01"`},
		{name: "solidus raw", in: "a/b", delim: StringDelimiter, want: `"a/b"`},
		{name: "solidus escaped", in: "a/b", delim: StringDelimiter, mode: EscapeSolidus, want: `"a\/b"`},
		{name: "modes combine", in: "/\u00e9", delim: StringDelimiter, mode: EscapeSolidus | EscapeASCII, want: `"\/\u00E9"`},
		{name: "invalid utf-8", in: "\xff", delim: StringDelimiter, want: "\"\ufffd\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendLiteral(nil, tt.in, tt.delim, tt.mode)
			if string(got) != tt.want {
				t.Fatalf("AppendLiteral(%q): got %s want %s", tt.in, got, tt.want)
			}
			if n := LiteralSize(tt.in, tt.delim, tt.mode); n != len(got) {
				t.Fatalf("LiteralSize(%q): got %d, encoded %d bytes", tt.in, n, len(got))
			}
		})
	}
}

func TestAppendLiteralPreservesPrefix(t *testing.T) {
	b := []byte("key=")
	b = AppendString(b, "v")
	if string(b) != `key="v"` {
		t.Fatalf("got %s", b)
	}
}

func TestAppendCodePointLoneSurrogate(t *testing.T) {
	got := AppendCodePoint(nil, 0xDC00, StringDelimiter, EscapeMinimal)
	if string(got) != `\uDC00` {
		t.Fatalf("lone surrogate: got %s", got)
	}
	if n := CodePointSize(0xDC00, StringDelimiter, EscapeMinimal); n != UnicodeEscapeSize {
		t.Fatalf("CodePointSize: got %d", n)
	}
	// Out of range becomes U+FFFD, escaped like any other non-ASCII code point.
	got = AppendCodePoint(nil, maxCodePoint+1, StringDelimiter, EscapeMinimal)
	if string(got) != "\ufffd" {
		t.Fatalf("out of range: got %s", got)
	}
	got = AppendCodePoint(nil, maxCodePoint+1, StringDelimiter, EscapeASCII)
	if string(got) != `\uFFFD` {
		t.Fatalf("out of range ascii: got %s", got)
	}
}

func TestAppendChar(t *testing.T) {
	tests := []struct {
		in   rune
		want string
	}{
		{'a', `'a'`},
		{'\'', `'\''`},
		{'"', `'"'`},
		{'\n', `'\n'`},
		{0x1F600, "'\U0001F600'"},
	}
	for _, tt := range tests {
		if got := AppendChar(nil, tt.in); string(got) != tt.want {
			t.Fatalf("AppendChar(%q): got %s want %s", tt.in, got, tt.want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"\"quoted\" and 'single'",
		"\b\f\n\r\t\v\\/",
		"\x00\x01\x1f\x7f",
		"café 世界",
		"\U0001F600\U0010FFFF",
		"\u00a0\u2028\ufeff",
	}
	for _, delim := range []uint16{StringDelimiter, CharDelimiter} {
		for _, mode := range []EscapeMode{EscapeMinimal, EscapeASCII, EscapeSolidus, EscapeASCII | EscapeSolidus} {
			for _, s := range inputs {
				enc := AppendLiteral(nil, s, delim, mode)
				r, err := NewReaderBytes(enc)
				if err != nil {
					t.Fatalf("NewReaderBytes(%s): %v", enc, err)
				}
				if _, err := r.Expect(delim); err != nil {
					t.Fatalf("open %s: %v", enc, err)
				}
				got, err := r.ReadLiteralBody(delim)
				if err != nil {
					t.Fatalf("decode %s: %v", enc, err)
				}
				if got != s || !r.AtEnd() {
					t.Fatalf("round trip mode %d: got %q want %q (AtEnd=%v)", mode, got, s, r.AtEnd())
				}
			}
		}
	}
}

func TestASCIIModeIsASCII(t *testing.T) {
	enc := AppendLiteral(nil, "\u00e9\u4e16\U0001F600\u2028", StringDelimiter, EscapeASCII)
	for i, c := range enc {
		if c >= 0x80 {
			t.Fatalf("byte %d of %s is not ASCII", i, enc)
		}
	}
}

func TestWriter(t *testing.T) {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	w := NewWriter(bb)
	_ = w.WriteRaw([]byte("["))
	_ = w.WriteString("a/b")
	_ = w.WriteRaw([]byte(","))
	w.SetEscapeMode(EscapeSolidus)
	_ = w.WriteString("a/b")
	_ = w.WriteRaw([]byte(","))
	_ = w.WriteChar('\'')
	_ = w.WriteRaw([]byte(","))
	if err := w.WriteLiteral(Literal{Delim: CharDelimiter, Value: "x"}); err != nil {
		t.Fatalf("WriteLiteral: %v", err)
	}
	_ = w.WriteRaw([]byte("]"))
	if want := `["a/b","a\/b",'\'','x']`; string(w.Bytes()) != want {
		t.Fatalf("got %s want %s", w.Bytes(), want)
	}
	if err := w.WriteLiteral(Literal{Delim: CharDelimiter}); err != ErrEmptyChar {
		t.Fatalf("expected ErrEmptyChar, got %v", err)
	}
	n := len(w.Bytes())
	if err := w.WriteLiteral(Literal{Delim: CharDelimiter, Value: "ab"}); !errors.Is(err, ErrCharTooLong) {
		t.Fatalf("expected ErrCharTooLong, got %v", err)
	}
	if len(w.Bytes()) != n {
		t.Fatalf("rejected char literal wrote %q", w.Bytes()[n:])
	}
}

func TestByteBufferAppend(t *testing.T) {
	bb := GetMinSize(4096)
	defer PutByteBuffer(bb)
	if bb.Cap() < 4096 {
		t.Fatalf("GetMinSize: cap %d", bb.Cap())
	}
	bb.AppendString("x").AppendChar('y').AppendLiteral("z", CharDelimiter, EscapeMinimal)
	if want := `"x"'y''z'`; string(bb.Bytes()) != want {
		t.Fatalf("got %s want %s", bb.Bytes(), want)
	}
	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	if err != nil || int(n) != bb.Len() || out.String() != string(bb.Bytes()) {
		t.Fatalf("WriteTo: %d %v %q", n, err, out.String())
	}
}
