package core

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"

	surf "github.com/synadia-labs/surf.go/runtime"
	tmplfs "github.com/synadia-labs/surf.go/surfc/templates"
)

var constsTemplate = template.Must(template.ParseFS(tmplfs.FS, "consts.go.tpl"))

// constSpec is one generated constant.
type constSpec struct {
	Name    string
	Literal string
	GoValue string
}

// GenOptions configures Go constant generation.
type GenOptions struct {
	Options
	// Package is the package clause of the generated file.
	Package string
	// Source is recorded in the file header when non-empty.
	Source string
}

// Generate turns lines of the form
//
//	Name "literal"
//	Name 'c'
//
// into a formatted Go source file declaring one constant per line.
// String literals become untyped string constants and character
// literals untyped rune constants.
func Generate(in []byte, filename string, opts GenOptions) ([]byte, error) {
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("invalid package name %q", opts.Package)
	}
	var consts []constSpec
	seen := make(map[string]int)
	for n, text := range literalLines(in) {
		name, lit, ok := bytes.Cut(text, []byte{' '})
		if !ok {
			name, lit, ok = bytes.Cut(text, []byte{'\t'})
		}
		if !ok || !token.IsIdentifier(string(name)) {
			return nil, fmt.Errorf("line %d: want `Name literal`", n)
		}
		if prev, dup := seen[string(name)]; dup {
			return nil, fmt.Errorf("line %d: %s already declared on line %d", n, name, prev)
		}
		seen[string(name)] = n

		lit = bytes.TrimSpace(lit)
		var v surf.Literal
		if err := surf.Unmarshal(lit, &v); err != nil {
			return nil, lineError(n, err)
		}
		cs := constSpec{Name: string(name), Literal: string(lit), GoValue: strconv.Quote(v.Value)}
		if v.Delim == surf.CharDelimiter {
			r := []rune(v.Value)[0]
			cs.GoValue = strconv.QuoteRune(r)
		}
		consts = append(consts, cs)
	}
	opts.logger().Debug("generating constants", "package", opts.Package, "count", len(consts))

	data := struct {
		Package string
		Source  string
		Consts  []constSpec
	}{
		Package: opts.Package,
		Source:  opts.Source,
		Consts:  consts,
	}

	var buf bytes.Buffer
	if err := constsTemplate.ExecuteTemplate(&buf, "consts.go.tpl", data); err != nil {
		return nil, err
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		// Fall back to go/format if goimports fails.
		opts.logger().Warn("goimports failed, falling back to gofmt", "error", err)
		if formatted, ferr := format.Source(buf.Bytes()); ferr == nil {
			src = formatted
		} else {
			return nil, fmt.Errorf("format generated source: %w", ferr)
		}
	}
	return src, nil
}

// GenerateFile runs Generate over inputPath and writes outputPath.
func GenerateFile(inputPath, outputPath string, opts GenOptions) error {
	in, err := ReadInputFile(inputPath, opts.Options)
	if err != nil {
		return err
	}
	if opts.Source == "" {
		opts.Source = filepath.Base(inputPath)
	}
	src, err := Generate(in, outputPath, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, src, 0o644)
}
