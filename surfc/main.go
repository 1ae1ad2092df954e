package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	surf "github.com/synadia-labs/surf.go/runtime"
	"github.com/synadia-labs/surf.go/surfc/core"
)

// Globals are the flags shared by every command.
type Globals struct {
	Verbose  bool  `short:"v" help:"Enable verbose diagnostics" env:"SURFC_VERBOSE"`
	MaxInput int64 `help:"Maximum input size in bytes" default:"16777216" env:"SURFC_MAX_INPUT"`

	out io.Writer    `kong:"-"`
	log *slog.Logger `kong:"-"`
}

func (g *Globals) options() core.Options {
	return core.Options{MaxInput: g.MaxInput, Logger: g.log}
}

// CLI defines the surfc command-line interface.
//
// Every command except escape reads one SURF literal per line.
// Input defaults to stdin and output to stdout.
type CLI struct {
	Globals

	Escape   EscapeCmd   `cmd:"" help:"Encode raw text as a single SURF literal."`
	Unescape UnescapeCmd `cmd:"" help:"Decode SURF literals, one per line."`
	Scan     ScanCmd     `cmd:"" help:"Export decoded literal tokens."`
	Validate ValidateCmd `cmd:"" help:"Check that every line holds one well-formed literal."`
	Gen      GenCmd      `cmd:"" help:"Generate Go constants from 'Name literal' lines."`
	JSON     JSONCmd     `cmd:"" name:"json" help:"Convert between SURF literals and JSON strings."`
}

type EscapeCmd struct {
	Input   string `short:"i" help:"Input file; '-' for stdin" default:"-"`
	Char    bool   `short:"c" help:"Emit a character literal (input must be one code point; one trailing line terminator is ignored)"`
	ASCII   bool   `help:"Escape every code point outside ASCII" env:"SURFC_ASCII"`
	Solidus bool   `help:"Escape '/' as well"`
}

func (c *EscapeCmd) Run(g *Globals) error {
	opts := g.options()
	if c.ASCII {
		opts.Mode |= surf.EscapeASCII
	}
	if c.Solidus {
		opts.Mode |= surf.EscapeSolidus
	}
	in, err := core.ReadInputFile(c.Input, opts)
	if err != nil {
		return err
	}
	return core.Escape(g.out, in, c.Char, opts)
}

type UnescapeCmd struct {
	Input string `short:"i" help:"Input file; '-' for stdin" default:"-"`
}

func (c *UnescapeCmd) Run(g *Globals) error {
	in, err := core.ReadInputFile(c.Input, g.options())
	if err != nil {
		return err
	}
	return core.Unescape(g.out, in, g.options())
}

type ScanCmd struct {
	Input  string `short:"i" help:"Input file; '-' for stdin" default:"-"`
	Output string `short:"o" help:"Output file; '-' for stdout" default:"-"`
	Format string `short:"f" help:"Export format (${enum})" enum:"json,cbor,msgpack,diag" default:"json"`
}

func (c *ScanCmd) Run(g *Globals) error {
	in, err := core.ReadInputFile(c.Input, g.options())
	if err != nil {
		return err
	}
	toks, err := core.Scan(in)
	if err != nil {
		return err
	}
	g.log.Debug("scanned literals", "count", len(toks), "format", c.Format)

	w := g.out
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	return core.Export(w, toks, core.Format(c.Format))
}

type ValidateCmd struct {
	Input string `short:"i" help:"Input file; '-' for stdin" default:"-"`
}

func (c *ValidateCmd) Run(g *Globals) error {
	in, err := core.ReadInputFile(c.Input, g.options())
	if err != nil {
		return err
	}
	n, errs := core.Validate(in, g.options())
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d literal(s) invalid: %w", len(errs), n, errors.Join(errs...))
	}
	fmt.Fprintf(g.out, "%d literal(s) ok\n", n)
	return nil
}

type GenCmd struct {
	Input   string `short:"i" help:"Input file of 'Name literal' lines" required:""`
	Output  string `short:"o" help:"Output Go file (defaults to {input}_surf.go)"`
	Package string `short:"p" help:"Package name of the generated file" default:"main"`
}

func (c *GenCmd) Run(g *Globals) error {
	out := strings.TrimSpace(c.Output)
	if out == "" {
		out = defaultOutputPath(c.Input)
	}
	return core.GenerateFile(c.Input, out, core.GenOptions{Options: g.options(), Package: c.Package})
}

// defaultOutputPath derives the "*_surf.go" filename for an input path.
func defaultOutputPath(inputPath string) string {
	if i := strings.LastIndexByte(inputPath, '.'); i > strings.LastIndexAny(inputPath, `/\`) {
		inputPath = inputPath[:i]
	}
	return inputPath + "_surf.go"
}

type JSONCmd struct {
	Input    string `short:"i" help:"Input file; '-' for stdin" default:"-"`
	FromJSON bool   `help:"Convert JSON strings to SURF literals instead"`
}

func (c *JSONCmd) Run(g *Globals) error {
	in, err := core.ReadInputFile(c.Input, g.options())
	if err != nil {
		return err
	}
	if c.FromJSON {
		return core.FromJSON(g.out, in)
	}
	return core.ToJSON(g.out, in)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("surfc"),
		kong.Description("Encode, decode and inspect SURF character and string literals."),
		kong.UsageOnError(),
	)

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	cli.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cli.out = os.Stdout

	if err := ctx.Run(&cli.Globals); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
