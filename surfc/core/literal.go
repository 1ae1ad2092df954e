package core

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	surf "github.com/synadia-labs/surf.go/runtime"
)

// Escape writes in, taken as raw text, as one literal followed by a newline.
// With char set, in must hold exactly one code point after one trailing
// line terminator is dropped. A lone terminator is kept as the code point.
func Escape(w io.Writer, in []byte, char bool, opts Options) error {
	if !utf8.Valid(in) {
		return surf.ErrInvalidUTF8
	}
	bb := surf.GetByteBuffer()
	defer surf.PutByteBuffer(bb)
	bw := surf.NewWriter(bb)
	bw.SetEscapeMode(opts.Mode)
	if char {
		if t := trimLineEnd(in); len(t) > 0 {
			in = t
		}
		r, size := utf8.DecodeRune(in)
		if size == 0 {
			return surf.ErrEmptyChar
		}
		if size != len(in) {
			return fmt.Errorf("character literal needs exactly one code point, got %d", utf8.RuneCount(in))
		}
		_ = bw.WriteChar(r)
	} else {
		_ = bw.WriteString(string(in))
	}
	_ = bw.WriteRaw([]byte{'\n'})
	opts.logger().Debug("escaped input", "in_bytes", len(in), "out_bytes", len(bw.Bytes()))
	_, err := w.Write(bw.Bytes())
	return err
}

// trimLineEnd drops one trailing "\n", "\r\n" or "\r".
func trimLineEnd(b []byte) []byte {
	if t, ok := bytes.CutSuffix(b, []byte("\n")); ok {
		return bytes.TrimSuffix(t, []byte("\r"))
	}
	return bytes.TrimSuffix(b, []byte("\r"))
}

// Unescape decodes one literal per line of in and writes each value on
// its own line. Decoding stops at the first bad line.
func Unescape(w io.Writer, in []byte, opts Options) error {
	for n, text := range literalLines(in) {
		var lit surf.Literal
		if err := surf.Unmarshal(text, &lit); err != nil {
			return lineError(n, err)
		}
		if _, err := io.WriteString(w, lit.Value+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every line of in and reports each bad one to the logger.
// It returns the number of literals checked and one error per bad line.
func Validate(in []byte, opts Options) (int, []error) {
	log := opts.logger()
	var (
		checked int
		errs    []error
	)
	for n, text := range literalLines(in) {
		checked++
		units, err := surf.UnitsFromBytes(text)
		if err == nil {
			err = surf.ValidateDocument(units)
		}
		if err != nil {
			log.Error("invalid literal", "line", n, "resumable", surf.Resumable(err), "error", err)
			errs = append(errs, lineError(n, err))
		}
	}
	log.Debug("validated input", "literals", checked, "invalid", len(errs))
	return checked, errs
}

// ToJSON converts one literal per line of in to one JSON string per line.
func ToJSON(w io.Writer, in []byte) error {
	for n, text := range literalLines(in) {
		js, rest, err := surf.ToJSONBytes(text)
		if err == nil && len(rest) > 0 {
			err = surf.ErrTrailingData
		}
		if err != nil {
			return lineError(n, err)
		}
		if _, err := w.Write(append(js, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// FromJSON converts one JSON string per line of in to one literal per line.
func FromJSON(w io.Writer, in []byte) error {
	for n, text := range literalLines(in) {
		lit, err := surf.FromJSONBytes(text)
		if err != nil {
			return lineError(n, err)
		}
		if _, err := w.Write(append(lit, '\n')); err != nil {
			return err
		}
	}
	return nil
}
