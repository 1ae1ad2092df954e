package surf

const (
	surrHighMin = 0xD800
	surrHighMax = 0xDBFF
	surrLowMin  = 0xDC00
	surrLowMax  = 0xDFFF
	surrSelf    = 0x10000
	surrShift   = 10

	maxCodePoint = 0x10FFFF

	hexDigits      = 4
	hexDigitsUpper = "0123456789ABCDEF"

	// "\\u" plus four hex digits.
	unicodeEscapeLen = 2 + hexDigits
)

// hexValues maps an ASCII code unit to its hex digit value, or -1.
var hexValues = func() [128]int8 {
	var t [128]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < 10; i++ {
		t['0'+i] = int8(i)
	}
	for i := 0; i < 6; i++ {
		t['a'+i] = int8(10 + i)
		t['A'+i] = int8(10 + i)
	}
	return t
}()

func hexValue(u uint16) int {
	if u >= 128 {
		return -1
	}
	return int(hexValues[u])
}

func isHighSurrogate(u uint16) bool { return u >= surrHighMin && u <= surrHighMax }

func isLowSurrogate(u uint16) bool { return u >= surrLowMin && u <= surrLowMax }

// combineSurrogates is (hi-0xD800)*0x400 + (lo-0xDC00) + 0x10000.
func combineSurrogates(hi, lo uint16) rune {
	return (rune(hi)-surrHighMin)<<surrShift + (rune(lo) - surrLowMin) + surrSelf
}

// splitSurrogates is the inverse of combineSurrogates for r >= 0x10000.
func splitSurrogates(r rune) (hi, lo uint16) {
	r -= surrSelf
	return uint16(surrHighMin + (r>>surrShift)&0x3ff), uint16(surrLowMin + r&0x3ff)
}
