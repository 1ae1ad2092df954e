package surf

import (
	"errors"
	"reflect"
	"strconv"
)

const resumableDefault = false

var (
	// ErrEndOfInput is matched by every *EndOfInputError: a read was
	// requested past the end of the buffer.
	ErrEndOfInput = errors.New("surf: unexpected end of input")

	// ErrUnexpectedChar is matched by every *UnexpectedCharError: an
	// exact-match read found a different code unit.
	ErrUnexpectedChar = errors.New("surf: unexpected character")

	// ErrInvalidEscape is matched by every *InvalidEscapeError: malformed hex
	// digits, an unknown escape letter, a broken surrogate pair or a raw
	// control character that must be escaped.
	ErrInvalidEscape = errors.New("surf: invalid escape")

	// ErrUnsupported is matched by every *ErrUnsupportedType.
	ErrUnsupported = errors.New("surf: unsupported construct")

	// ErrInvalidUTF8 is returned when byte input is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("surf: invalid UTF-8 in input")

	// ErrLimitExceeded is returned when input is larger than the configured limit.
	// Hosts should bound input before handing it to a Reader.
	ErrLimitExceeded error = errLimitExceeded{}
)

// Error is the interface satisfied
// by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable returns whether the caller may
	// try a different grammar production after
	// this error, or whether the current parse is lost.
	Resumable() bool
}

// contextError allows Error instances to be enhanced with additional
// context about their origin.
type contextError interface {
	Error

	// withContext must not modify the error instance - it must clone and
	// return a new error with the context added.
	withContext(ctx string) error
}

// Cause returns the underlying cause of an error that has been wrapped
// with additional context.
func Cause(e error) error {
	out := e
	if e, ok := e.(errWrapped); ok && e.cause != nil {
		out = e.cause
	}
	return out
}

// Resumable returns whether or not the error leaves the input in a state
// where another production may be attempted.
func Resumable(e error) bool {
	if e, ok := e.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// WrapError wraps an error with additional context that allows the part of the
// input that caused the problem to be identified. Underlying errors
// can be retrieved using Cause() or errors.Unwrap.
//
// The input error is not modified - a new error is returned.
func WrapError(err error, ctx ...any) error {
	switch e := err.(type) {
	case nil:
		return nil
	case contextError:
		return e.withContext(ctxString(ctx))
	default:
		return errWrapped{cause: err, ctx: ctxString(ctx)}
	}
}

func ctxString(ctx []any) string {
	out := ""
	for idx, cv := range ctx {
		if idx > 0 {
			out += "/"
		}
		switch c := cv.(type) {
		case nil:
			out += "<nil>"
		case string:
			out += c
		case int:
			out += strconv.Itoa(c)
		case uint16:
			out += quoteUnit(c)
		case rune:
			out += strconv.QuoteRune(c)
		case interface{ String() string }:
			out += c.String()
		default:
			out += reflect.TypeOf(cv).String()
		}
	}
	return out
}

func addCtx(ctx, add string) string {
	if ctx != "" {
		return add + "/" + ctx
	} else {
		return add
	}
}

// errWrapped allows arbitrary errors passed to WrapError to be enhanced with
// context and unwrapped with Cause()
type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	} else {
		return e.cause.Error()
	}
}

func (e errWrapped) Resumable() bool {
	if e, ok := e.cause.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }

type errLimitExceeded struct{}

func (e errLimitExceeded) Error() string   { return "surf: configured input limit exceeded" }
func (e errLimitExceeded) Resumable() bool { return false }

// positionError wraps a sentinel with the offset it was detected at.
func positionError(err error, offset int) error {
	return errWrapped{cause: err, ctx: "offset " + strconv.Itoa(offset)}
}

// EndOfInputError is returned when a read needs more code units than
// remain in the buffer.
type EndOfInputError struct {
	Offset    int // offset of the failed read
	Wanted    int // code units requested
	Remaining int // code units that were left
	ctx       string
}

// Error implements the error interface
func (e *EndOfInputError) Error() string {
	out := "surf: unexpected end of input: wanted " + strconv.Itoa(e.Wanted) +
		" code unit(s), " + strconv.Itoa(e.Remaining) + " left at offset " + strconv.Itoa(e.Offset)
	if e.ctx != "" {
		out += " in " + e.ctx
	}
	return out
}

// Is reports whether target is ErrEndOfInput.
func (e *EndOfInputError) Is(target error) bool { return target == ErrEndOfInput }

// Resumable is always 'false': the literal is truncated.
func (e *EndOfInputError) Resumable() bool { return false }

func (e *EndOfInputError) withContext(ctx string) error {
	o := *e
	o.ctx = addCtx(o.ctx, ctx)
	return &o
}

// UnexpectedCharError is returned when an exact-match read fails.
// The mismatched code unit has already been consumed.
type UnexpectedCharError struct {
	Expected uint16
	Actual   uint16
	Offset   int // offset of Actual
	ctx      string
}

// Error implements the error interface
func (e *UnexpectedCharError) Error() string {
	out := "surf: expected " + quoteUnit(e.Expected) + ", got " + quoteUnit(e.Actual) +
		" at offset " + strconv.Itoa(e.Offset)
	if e.ctx != "" {
		out += " in " + e.ctx
	}
	return out
}

// Is reports whether target is ErrUnexpectedChar.
func (e *UnexpectedCharError) Is(target error) bool { return target == ErrUnexpectedChar }

// Resumable is always 'true': the caller may try another production.
func (e *UnexpectedCharError) Resumable() bool { return true }

func (e *UnexpectedCharError) withContext(ctx string) error {
	o := *e
	o.ctx = addCtx(o.ctx, ctx)
	return &o
}

// InvalidEscapeError is returned for a malformed escape sequence, a broken
// surrogate pair or a raw control character that must be escaped.
type InvalidEscapeError struct {
	Detail string
	Offset int // offset of the code point that failed to decode
	ctx    string
}

// Error implements the error interface
func (e *InvalidEscapeError) Error() string {
	out := "surf: invalid escape: " + e.Detail + " at offset " + strconv.Itoa(e.Offset)
	if e.ctx != "" {
		out += " in " + e.ctx
	}
	return out
}

// Is reports whether target is ErrInvalidEscape.
func (e *InvalidEscapeError) Is(target error) bool { return target == ErrInvalidEscape }

// Resumable is always 'false'.
func (e *InvalidEscapeError) Resumable() bool { return false }

func (e *InvalidEscapeError) withContext(ctx string) error {
	o := *e
	o.ctx = addCtx(o.ctx, ctx)
	return &o
}

// ErrUnsupportedType is returned when Marshal or Unmarshal is handed a
// value the literal layer cannot represent. It signals a missing grammar
// production, not malformed input.
type ErrUnsupportedType struct {
	T reflect.Type

	ctx string
}

// Error implements error
func (e *ErrUnsupportedType) Error() string {
	name := "<nil>"
	if e.T != nil {
		name = e.T.String()
	}
	out := "surf: type " + strconv.Quote(name) + " not supported"
	if e.ctx != "" {
		out += " at " + e.ctx
	}
	return out
}

// Is reports whether target is ErrUnsupported.
func (e *ErrUnsupportedType) Is(target error) bool { return target == ErrUnsupported }

// Resumable returns 'true' for ErrUnsupportedType
func (e *ErrUnsupportedType) Resumable() bool { return true }

func (e *ErrUnsupportedType) withContext(ctx string) error {
	o := *e
	o.ctx = addCtx(o.ctx, ctx)
	return &o
}

// quoteUnit renders a code unit as 'x' (U+0078).
func quoteUnit(u uint16) string {
	hex := []byte("U+0000")
	for i := 0; i < hexDigits; i++ {
		hex[len(hex)-1-i] = hexDigitsUpper[(u>>(4*i))&0xf]
	}
	if u >= surrHighMin && u <= surrLowMax {
		return string(hex)
	}
	return strconv.QuoteRune(rune(u)) + " (" + string(hex) + ")"
}
