package core

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	surf "github.com/synadia-labs/surf.go/runtime"
)

// DefaultMaxInput bounds how much input a single command will buffer.
const DefaultMaxInput = 16 << 20

// Options configures how a command runs.
type Options struct {
	// MaxInput is the largest input accepted, in bytes. Zero means DefaultMaxInput.
	MaxInput int64
	// Mode selects optional escaping on output.
	Mode surf.EscapeMode
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o Options) maxInput() int64 {
	if o.MaxInput <= 0 {
		return DefaultMaxInput
	}
	return o.MaxInput
}

// ReadInput buffers all of r, failing with surf.ErrLimitExceeded once
// more than max bytes arrive.
func ReadInput(r io.Reader, max int64) ([]byte, error) {
	bb := surf.GetByteBuffer()
	defer surf.PutByteBuffer(bb)
	if _, err := bb.ReadFrom(io.LimitReader(r, max+1)); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if int64(bb.Len()) > max {
		return nil, surf.ErrLimitExceeded
	}
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out, nil
}

// ReadInputFile reads path, or stdin when path is "" or "-".
func ReadInputFile(path string, opts Options) ([]byte, error) {
	if path == "" || path == "-" {
		return ReadInput(os.Stdin, opts.maxInput())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	opts.logger().Debug("reading input", "path", path)
	return ReadInput(f, opts.maxInput())
}

// literalLines yields every non-blank line of in with its 1-based line
// number. Surrounding ASCII whitespace and the line terminator are removed.
//
// Literal-per-line is a tooling convention: raw line feeds can never
// appear inside a literal, so each line is an independent document.
func literalLines(in []byte) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		n := 0
		for line := range bytes.Lines(in) {
			n++
			text := bytes.TrimSpace(line)
			if len(text) == 0 {
				continue
			}
			if !yield(n, text) {
				return
			}
		}
	}
}

// lineError attaches the line number to err.
func lineError(line int, err error) error {
	return surf.WrapError(err, fmt.Sprintf("line %d", line))
}
