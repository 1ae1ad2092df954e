package surf

// Writer provides a minimal literal writer backed by ByteBuffer.
// It is intended for use by grammar layers that emit whole documents.
type Writer struct {
	bb   *ByteBuffer
	mode EscapeMode
}

// NewWriter constructs a Writer that appends to the provided ByteBuffer.
func NewWriter(bb *ByteBuffer) *Writer { return &Writer{bb: bb} }

// SetEscapeMode controls how much beyond the required set is escaped.
func (w *Writer) SetEscapeMode(mode EscapeMode) { w.mode = mode }

// Bytes returns the underlying encoded bytes.
func (w *Writer) Bytes() []byte { return w.bb.Bytes() }

// WriteString writes s as a string literal.
func (w *Writer) WriteString(s string) error {
	w.bb.AppendLiteral(s, StringDelimiter, w.mode)
	return nil
}

// WriteChar writes r as a character literal.
func (w *Writer) WriteChar(r rune) error {
	w.bb.Ensure(CodePointSize(r, CharDelimiter, w.mode) + EmptyLiteralSize)
	_ = w.bb.WriteByte(byte(CharDelimiter))
	w.bb.AppendCodePoint(r, CharDelimiter, w.mode)
	return w.bb.WriteByte(byte(CharDelimiter))
}

// WriteLiteral writes a previously decoded literal back out.
func (w *Writer) WriteLiteral(lit Literal) error {
	if lit.Delim == CharDelimiter {
		r, err := charRune(lit.Value)
		if err != nil {
			return err
		}
		return w.WriteChar(r)
	}
	return w.WriteString(lit.Value)
}

// WriteRaw writes already-encoded text verbatim, for grammar punctuation.
func (w *Writer) WriteRaw(p []byte) error {
	_, err := w.bb.Write(p)
	return err
}
