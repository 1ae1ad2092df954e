package surf

import "reflect"

// Marshaler is implemented by types that encode themselves as SURF text.
// It is the extension point for grammar productions beyond literals.
type Marshaler interface {
	MarshalSURF(b []byte) ([]byte, error)
}

// Unmarshaler is implemented by types that decode themselves from a Reader.
type Unmarshaler interface {
	UnmarshalSURF(r *Reader) error
}

// Marshal returns the SURF encoding of v.
//
// Only literal values are supported: string, Char, Literal and any
// Marshaler. Everything else fails with *ErrUnsupportedType.
func Marshal(v any) ([]byte, error) {
	return AppendValue(nil, v)
}

// AppendValue appends the SURF encoding of v to b.
func AppendValue(b []byte, v any) ([]byte, error) {
	switch v := v.(type) {
	case Marshaler:
		return v.MarshalSURF(b)
	case string:
		return AppendString(b, v), nil
	case Char:
		return AppendChar(b, rune(v)), nil
	case Literal:
		if v.Delim == CharDelimiter {
			r, err := charRune(v.Value)
			if err != nil {
				return b, err
			}
			return AppendChar(b, r), nil
		}
		return AppendString(b, v.Value), nil
	}
	return b, &ErrUnsupportedType{T: reflect.TypeOf(v)}
}

// Unmarshal decodes b, which must hold exactly one value, into v.
//
// v must be a *string, *Char, *Literal or an Unmarshaler.
// Everything else fails with *ErrUnsupportedType.
func Unmarshal(b []byte, v any) error {
	r, err := NewReaderBytes(b)
	if err != nil {
		return err
	}
	if err := ReadValue(r, v); err != nil {
		return err
	}
	if !r.AtEnd() {
		return positionError(ErrTrailingData, r.Offset())
	}
	return nil
}

// ReadValue decodes the next value from r into v.
func ReadValue(r *Reader, v any) (err error) {
	defer func() {
		if err != nil {
			err = WrapError(err, reflect.TypeOf(v))
		}
	}()
	if rv := reflect.ValueOf(v); rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &ErrUnsupportedType{T: reflect.TypeOf(v)}
	}
	switch v := v.(type) {
	case Unmarshaler:
		return v.UnmarshalSURF(r)
	case *string:
		s, err := r.ReadString()
		if err != nil {
			return err
		}
		*v = s
		return nil
	case *Char:
		cp, err := r.ReadChar()
		if err != nil {
			return err
		}
		*v = Char(cp)
		return nil
	case *Literal:
		lit, err := r.ReadLiteral()
		if err != nil {
			return err
		}
		*v = lit
		return nil
	}
	return &ErrUnsupportedType{T: reflect.TypeOf(v)}
}
