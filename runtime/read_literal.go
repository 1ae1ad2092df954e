package surf

import (
	"iter"
	"strings"
)

// Literal is one decoded character or string literal.
type Literal struct {
	Delim  uint16 // CharDelimiter or StringDelimiter
	Offset int    // offset of the opening delimiter
	End    int    // offset just past the closing delimiter
	Value  string
}

// ReadCodePoint decodes exactly one logical character of a literal bounded
// by delim. The opening delimiter must already have been consumed.
//
// It returns EndOfLiteral once the closing delimiter is read. Escapes,
// \uHHHH sequences and surrogate pairs (raw or escaped) are resolved to a
// single code point. A lone low surrogate is returned unchanged.
func (r *Reader) ReadCodePoint(delim uint16) (rune, error) {
	start := r.off
	c, err := r.ReadUnit()
	if err != nil {
		return 0, err
	}
	switch {
	case c == delim:
		return EndOfLiteral, nil
	case c == Escape:
		return r.readEscape(start, delim)
	case isHighSurrogate(c):
		lo, err := r.ReadUnit()
		if err != nil {
			return 0, err
		}
		if !isLowSurrogate(lo) {
			return 0, &InvalidEscapeError{Detail: "unpaired high surrogate " + quoteUnit(c), Offset: start}
		}
		return combineSurrogates(c, lo), nil
	case RequiresEscape(rune(c)):
		return 0, &InvalidEscapeError{Detail: "unescaped " + quoteUnit(c), Offset: start}
	}
	return rune(c), nil
}

// readEscape decodes the remainder of an escape sequence whose backslash
// started at offset start.
func (r *Reader) readEscape(start int, delim uint16) (rune, error) {
	e, err := r.ReadUnit()
	if err != nil {
		return 0, err
	}
	if e == Escape || e == Solidus {
		return rune(e), nil
	}
	if cp, ok := decodeEscapes[e]; ok {
		return cp, nil
	}
	if e == unicodeEscape {
		return r.readUnicodeEscape(start)
	}
	if e == delim {
		return rune(delim), nil
	}
	return 0, &InvalidEscapeError{Detail: "unknown escape \\" + string(rune(e)), Offset: start}
}

// readUnicodeEscape decodes the hex digits after "\u", and the second
// "\uHHHH" of a surrogate pair when the first names a high surrogate.
func (r *Reader) readUnicodeEscape(start int) (rune, error) {
	hi, err := r.readHex4(start)
	if err != nil {
		return 0, err
	}
	if !isHighSurrogate(hi) {
		return rune(hi), nil
	}
	if _, err := r.Expect(Escape); err != nil {
		return 0, err
	}
	if _, err := r.Expect(unicodeEscape); err != nil {
		return 0, err
	}
	lo, err := r.readHex4(start)
	if err != nil {
		return 0, err
	}
	if !isLowSurrogate(lo) {
		return 0, &InvalidEscapeError{Detail: "high surrogate " + quoteUnit(hi) + " followed by " + quoteUnit(lo), Offset: start}
	}
	return combineSurrogates(hi, lo), nil
}

func (r *Reader) readHex4(start int) (uint16, error) {
	digits, err := r.ReadExactly(hexDigits)
	if err != nil {
		return 0, err
	}
	var v uint16
	for _, d := range digits {
		h := hexValue(d)
		if h < 0 {
			return 0, &InvalidEscapeError{Detail: "invalid hex digit " + quoteUnit(d) + " in \\u escape", Offset: start}
		}
		v = v<<4 | uint16(h)
	}
	return v, nil
}

// CodePoints returns an iterator over the code points of the literal
// bounded by delim, starting at the current offset. Iteration stops after
// the closing delimiter or after the first error, which is yielded.
// Each call continues from wherever the Reader is.
func (r *Reader) CodePoints(delim uint16) iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		for {
			cp, err := r.ReadCodePoint(delim)
			if err != nil {
				yield(0, err)
				return
			}
			if cp == EndOfLiteral {
				return
			}
			if !yield(cp, nil) {
				return
			}
		}
	}
}

// ReadLiteralBody decodes a literal bounded by delim whose opening
// delimiter has already been consumed, through its closing delimiter.
// Lone surrogates become U+FFFD in the returned string.
func (r *Reader) ReadLiteralBody(delim uint16) (string, error) {
	var sb strings.Builder
	for cp, err := range r.CodePoints(delim) {
		if err != nil {
			return "", err
		}
		sb.WriteRune(cp)
	}
	return sb.String(), nil
}

// ReadString reads a complete string literal.
func (r *Reader) ReadString() (string, error) {
	if _, err := r.Expect(StringDelimiter); err != nil {
		return "", err
	}
	return r.ReadLiteralBody(StringDelimiter)
}

// ReadChar reads a complete character literal holding exactly one code point.
func (r *Reader) ReadChar() (rune, error) {
	start := r.off
	if _, err := r.Expect(CharDelimiter); err != nil {
		return 0, err
	}
	cp, err := r.ReadCodePoint(CharDelimiter)
	if err != nil {
		return 0, err
	}
	if cp == EndOfLiteral {
		return 0, positionError(ErrEmptyChar, start)
	}
	if _, err := r.Expect(CharDelimiter); err != nil {
		return 0, err
	}
	return cp, nil
}

// ReadLiteralCodePoints reads whichever literal starts at the current
// offset and returns its delimiter and code points. Lone surrogates are
// kept as they are. A character literal must hold exactly one code point,
// as with ReadChar.
func (r *Reader) ReadLiteralCodePoints() (uint16, []rune, error) {
	delim, ok := r.PeekUnit()
	if !ok {
		return 0, nil, r.RequireNotAtEnd()
	}
	if delim == CharDelimiter {
		cp, err := r.ReadChar()
		if err != nil {
			return delim, nil, err
		}
		return delim, []rune{cp}, nil
	}
	if _, err := r.Expect(StringDelimiter); err != nil {
		return StringDelimiter, nil, err
	}
	var cps []rune
	for cp, err := range r.CodePoints(StringDelimiter) {
		if err != nil {
			return delim, nil, err
		}
		cps = append(cps, cp)
	}
	return delim, cps, nil
}

// ReadLiteral reads whichever literal starts at the current offset.
// Anything other than an opening delimiter is consumed and reported as
// an *UnexpectedCharError expecting a string literal.
func (r *Reader) ReadLiteral() (Literal, error) {
	lit := Literal{Offset: r.off}
	u, ok := r.PeekUnit()
	if !ok {
		return lit, r.RequireNotAtEnd()
	}
	switch u {
	case CharDelimiter:
		cp, err := r.ReadChar()
		if err != nil {
			return lit, err
		}
		lit.Value = string(cp)
	default:
		s, err := r.ReadString()
		if err != nil {
			return lit, err
		}
		lit.Value = s
	}
	lit.Delim = u
	lit.End = r.off
	return lit, nil
}
