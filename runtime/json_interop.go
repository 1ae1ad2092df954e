package surf

import (
	"encoding/json"
	"unicode/utf8"
)

// ToJSONBytes converts the literal at the start of b into a JSON string
// and returns the JSON bytes and the remainder of b. Character literals
// become one-character JSON strings.
func ToJSONBytes(b []byte) ([]byte, []byte, error) {
	r, err := NewReaderBytes(b)
	if err != nil {
		return nil, b, err
	}
	lit, err := r.ReadLiteral()
	if err != nil {
		return nil, b, err
	}
	js, err := json.Marshal(lit.Value)
	if err != nil {
		return nil, b, err
	}
	return js, b[byteOffset(b, r.Offset()):], nil
}

// FromJSONBytes converts a JSON string value into a SURF string literal.
func FromJSONBytes(js []byte) ([]byte, error) {
	var s string
	if err := json.Unmarshal(js, &s); err != nil {
		return nil, WrapError(err, "json")
	}
	return AppendString(nil, s), nil
}

// byteOffset maps an offset in UTF-16 code units of valid UTF-8 text b
// back to a byte offset in b.
func byteOffset(b []byte, units int) int {
	i := 0
	for units > 0 && i < len(b) {
		r, size := utf8.DecodeRune(b[i:])
		if r >= surrSelf {
			units -= 2
		} else {
			units--
		}
		i += size
	}
	return i
}
