package surf

import (
	"unicode/utf16"
)

// Reader is a forward-only cursor over an immutable, fully memory-resident
// buffer of UTF-16 code units. It is created per parse and is not safe for
// concurrent use; independent parses should each use their own Reader.
type Reader struct {
	buf []uint16
	off int
}

// NewReaderUnits constructs a Reader over the provided code units.
// The slice must not be modified while the Reader is in use.
func NewReaderUnits(u []uint16) *Reader { return &Reader{buf: u} }

// NewReaderString constructs a Reader over the UTF-16 form of s.
// Invalid UTF-8 in s reads as U+FFFD.
func NewReaderString(s string) *Reader { return &Reader{buf: utf16.Encode([]rune(s))} }

// NewReaderBytes constructs a Reader over the UTF-16 form of b,
// rejecting input that is not valid UTF-8.
func NewReaderBytes(b []byte) (*Reader, error) {
	u, err := UnitsFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &Reader{buf: u}, nil
}

// Len returns the total number of code units in the buffer.
func (r *Reader) Len() int { return len(r.buf) }

// Offset returns the current read position. 0 <= Offset() <= Len().
func (r *Reader) Offset() int { return r.off }

// Remaining returns the unread portion of the underlying buffer.
func (r *Reader) Remaining() []uint16 { return r.buf[r.off:] }

// AtEnd reports whether every code unit has been consumed.
func (r *Reader) AtEnd() bool { return r.off >= len(r.buf) }

// RequireNotAtEnd fails with an *EndOfInputError if AtEnd.
func (r *Reader) RequireNotAtEnd() error {
	if r.AtEnd() {
		return &EndOfInputError{Offset: r.off, Wanted: 1}
	}
	return nil
}

// PeekUnit returns the next code unit without consuming it.
// ok is false at the end of input.
func (r *Reader) PeekUnit() (u uint16, ok bool) {
	if r.AtEnd() {
		return 0, false
	}
	return r.buf[r.off], true
}

// ReadUnit reads one code unit and advances by one.
func (r *Reader) ReadUnit() (uint16, error) {
	if err := r.RequireNotAtEnd(); err != nil {
		return 0, err
	}
	u := r.buf[r.off]
	r.off++
	return u, nil
}

// ReadExactly reads the next n code units. If fewer than n remain it
// fails without consuming anything. The returned slice aliases the buffer.
func (r *Reader) ReadExactly(n int) ([]uint16, error) {
	if n < 0 {
		n = 0
	}
	left := len(r.buf) - r.off
	if left < n {
		return nil, &EndOfInputError{Offset: r.off, Wanted: n, Remaining: left}
	}
	out := r.buf[r.off : r.off+n : r.off+n]
	r.off += n
	return out, nil
}

// Expect reads one code unit and checks it against want.
//
// On mismatch the unit is NOT pushed back: the offset has advanced past
// it and the returned *UnexpectedCharError records where it was.
// Use PeekUnit to choose between productions without consuming.
func (r *Reader) Expect(want uint16) (uint16, error) {
	at := r.off
	u, err := r.ReadUnit()
	if err != nil {
		return 0, err
	}
	if u != want {
		return u, &UnexpectedCharError{Expected: want, Actual: u, Offset: at}
	}
	return u, nil
}
