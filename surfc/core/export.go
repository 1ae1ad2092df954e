package core

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/tinylib/msgp/msgp"

	surf "github.com/synadia-labs/surf.go/runtime"
)

// Format names an export encoding for scanned tokens.
type Format string

const (
	FormatJSON    Format = "json"
	FormatCBOR    Format = "cbor"
	FormatMsgpack Format = "msgpack"
	FormatDiag    Format = "diag"
)

// Formats lists every supported export format.
var Formats = []Format{FormatJSON, FormatCBOR, FormatMsgpack, FormatDiag}

// Token is one scanned literal. Offsets are in UTF-16 code units
// relative to the start of its line.
type Token struct {
	Line       int     `json:"line" cbor:"line" msg:"line"`
	Delim      string  `json:"delim" cbor:"delim" msg:"delim"`
	Offset     int     `json:"offset" cbor:"offset" msg:"offset"`
	End        int     `json:"end" cbor:"end" msg:"end"`
	Value      string  `json:"value" cbor:"value" msg:"value"`
	CodePoints []int32 `json:"code_points" cbor:"code_points" msg:"code_points"`
	Diag       string  `json:"-" cbor:"-" msg:"-"`
}

// tokenFieldCount is the number of msgpack map entries per Token.
const tokenFieldCount = 6

// Scan decodes one literal per line of in. Scanning stops at the first bad line.
func Scan(in []byte) ([]Token, error) {
	toks := []Token{}
	for n, text := range literalLines(in) {
		units, err := surf.UnitsFromBytes(text)
		if err != nil {
			return toks, lineError(n, err)
		}
		diag, rest, err := surf.DiagLiteral(units)
		if err == nil && len(rest) > 0 {
			err = surf.ErrTrailingData
		}
		if err != nil {
			return toks, lineError(n, err)
		}

		r := surf.NewReaderUnits(units)
		tok := Token{Line: n, Offset: r.Offset(), Diag: diag}
		delim, cps, err := r.ReadLiteralCodePoints()
		if err != nil {
			return toks, lineError(n, err)
		}
		tok.Delim = string(rune(delim))
		tok.CodePoints = cps
		tok.Value = string(cps)
		tok.End = r.Offset()
		toks = append(toks, tok)
	}
	return toks, nil
}

// Export writes toks to w in the given format.
func Export(w io.Writer, toks []Token, format Format) error {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON:
		if toks == nil {
			toks = []Token{}
		}
		out, err = json.MarshalIndent(toks, "", "  ")
		out = append(out, '\n')
	case FormatCBOR:
		out, err = marshalCBOR(toks)
	case FormatMsgpack:
		out = msgp.AppendArrayHeader(nil, uint32(len(toks)))
		for i := range toks {
			if out, err = toks[i].MarshalMsg(out); err != nil {
				break
			}
		}
	case FormatDiag:
		var sb strings.Builder
		for _, t := range toks {
			fmt.Fprintf(&sb, "%d: %s\n", t.Line, t.Diag)
		}
		out = []byte(sb.String())
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	_, err = w.Write(out)
	return err
}

// marshalCBOR encodes toks with core deterministic encoding so that
// identical input always exports byte-identical output.
func marshalCBOR(toks []Token) ([]byte, error) {
	em, err := fxcbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(toks)
}

// MarshalMsg implements msgp.Marshaler
func (t *Token) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.Require(b, t.Msgsize())
	b = msgp.AppendMapHeader(b, tokenFieldCount)
	b = msgp.AppendString(b, "line")
	b = msgp.AppendInt(b, t.Line)
	b = msgp.AppendString(b, "delim")
	b = msgp.AppendString(b, t.Delim)
	b = msgp.AppendString(b, "offset")
	b = msgp.AppendInt(b, t.Offset)
	b = msgp.AppendString(b, "end")
	b = msgp.AppendInt(b, t.End)
	b = msgp.AppendString(b, "value")
	b = msgp.AppendString(b, t.Value)
	b = msgp.AppendString(b, "code_points")
	b = msgp.AppendArrayHeader(b, uint32(len(t.CodePoints)))
	for _, cp := range t.CodePoints {
		b = msgp.AppendInt32(b, cp)
	}
	return b, nil
}

// UnmarshalMsg implements msgp.Unmarshaler
func (t *Token) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var sz uint32
	sz, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return bts, msgp.WrapError(err)
	}
	for ; sz > 0; sz-- {
		var field []byte
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return bts, msgp.WrapError(err)
		}
		switch msgp.UnsafeString(field) {
		case "line":
			t.Line, bts, err = msgp.ReadIntBytes(bts)
		case "delim":
			t.Delim, bts, err = msgp.ReadStringBytes(bts)
		case "offset":
			t.Offset, bts, err = msgp.ReadIntBytes(bts)
		case "end":
			t.End, bts, err = msgp.ReadIntBytes(bts)
		case "value":
			t.Value, bts, err = msgp.ReadStringBytes(bts)
		case "code_points":
			var n uint32
			n, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				return bts, msgp.WrapError(err, "CodePoints")
			}
			t.CodePoints = make([]int32, n)
			for i := range t.CodePoints {
				t.CodePoints[i], bts, err = msgp.ReadInt32Bytes(bts)
				if err != nil {
					return bts, msgp.WrapError(err, "CodePoints", i)
				}
			}
		default:
			bts, err = msgp.Skip(bts)
		}
		if err != nil {
			return bts, msgp.WrapError(err, string(field))
		}
	}
	return bts, nil
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (t *Token) Msgsize() int {
	return msgp.MapHeaderSize +
		5 + msgp.IntSize +
		6 + msgp.StringPrefixSize + len(t.Delim) +
		7 + msgp.IntSize +
		4 + msgp.IntSize +
		6 + msgp.StringPrefixSize + len(t.Value) +
		12 + msgp.ArrayHeaderSize + len(t.CodePoints)*msgp.Int32Size
}

// DecodeMsgpackTokens reads an array of tokens written by Export.
func DecodeMsgpackTokens(b []byte) ([]Token, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return nil, err
	}
	toks := make([]Token, n)
	for i := range toks {
		if b, err = toks[i].UnmarshalMsg(b); err != nil {
			return nil, err
		}
	}
	return toks, nil
}
