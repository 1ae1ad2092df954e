package templates

import "embed"

// FS exposes the codegen templates used by surfc gen.
//
//go:embed *.go.tpl
var FS embed.FS
