package surf

// ValidateLiteral checks that a well-formed literal starts at the reader's
// offset and consumes it, without building its value.
func ValidateLiteral(r *Reader) error {
	delim, ok := r.PeekUnit()
	if !ok {
		return r.RequireNotAtEnd()
	}
	if delim == CharDelimiter {
		_, err := r.ReadChar()
		return err
	}
	if _, err := r.Expect(StringDelimiter); err != nil {
		return err
	}
	for _, err := range r.CodePoints(StringDelimiter) {
		if err != nil {
			return err
		}
	}
	return nil
}

// ValidateDocument validates that units hold exactly one literal and
// nothing after it.
func ValidateDocument(units []uint16) error {
	r := NewReaderUnits(units)
	if err := ValidateLiteral(r); err != nil {
		return err
	}
	if !r.AtEnd() {
		return positionError(ErrTrailingData, r.Offset())
	}
	return nil
}

// ValidLiteral reports whether s is exactly one well-formed literal.
func ValidLiteral(s string) bool {
	return ValidateDocument(NewReaderString(s).Remaining()) == nil
}
