package surf

import "strconv"

// DiagLiteral renders the literal at the start of units in diagnostic
// notation and returns the remaining units. Each code point is written as
// U+XXXX between the literal's own delimiters, so
//
//	"a😀"
//
// renders as
//
//	"U+0061 U+1F600"
func DiagLiteral(units []uint16) (string, []uint16, error) {
	r := NewReaderUnits(units)
	delim, cps, err := r.ReadLiteralCodePoints()
	if err != nil {
		return "", units, err
	}

	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	_ = bb.WriteByte(byte(delim))
	for i, cp := range cps {
		if i > 0 {
			_ = bb.WriteByte(' ')
		}
		bb.b = appendDiagCodePoint(bb.b, cp)
	}
	_ = bb.WriteByte(byte(delim))
	return string(bb.Bytes()), r.Remaining(), nil
}

// appendDiagCodePoint writes U+XXXX with at least four hex digits.
func appendDiagCodePoint(b []byte, cp rune) []byte {
	b = append(b, 'U', '+')
	h := strconv.FormatInt(int64(cp), 16)
	for i := len(h); i < hexDigits; i++ {
		b = append(b, '0')
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		if c >= 'a' {
			c -= 'a' - 'A'
		}
		b = append(b, c)
	}
	return b
}
