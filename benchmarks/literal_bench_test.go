package benchmarks

import (
	"encoding/json"
	"strconv"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	msgp "github.com/tinylib/msgp/msgp"

	surf "github.com/synadia-labs/surf.go/runtime"
)

// String encode and decode microbenchmarks comparing SURF literals
// against Go quoting, JSON, MessagePack and CBOR strings for the same
// payloads.

func BenchmarkEncode(b *testing.B) {
	for _, in := range benchInputs {
		b.Run("SURF/"+in.Name, func(b *testing.B) {
			var out []byte
			b.SetBytes(int64(len(in.Value)))
			b.ReportAllocs()
			for b.Loop() {
				out = surf.AppendString(out[:0], in.Value)
			}
		})
		b.Run("SURFASCII/"+in.Name, func(b *testing.B) {
			var out []byte
			b.SetBytes(int64(len(in.Value)))
			b.ReportAllocs()
			for b.Loop() {
				out = surf.AppendLiteral(out[:0], in.Value, surf.StringDelimiter, surf.EscapeASCII)
			}
		})
		b.Run("Strconv/"+in.Name, func(b *testing.B) {
			var out []byte
			b.SetBytes(int64(len(in.Value)))
			b.ReportAllocs()
			for b.Loop() {
				out = strconv.AppendQuote(out[:0], in.Value)
			}
		})
		b.Run("JSON/"+in.Name, func(b *testing.B) {
			b.SetBytes(int64(len(in.Value)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := json.Marshal(in.Value); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run("Msgp/"+in.Name, func(b *testing.B) {
			var out []byte
			b.SetBytes(int64(len(in.Value)))
			b.ReportAllocs()
			for b.Loop() {
				out = msgp.AppendString(out[:0], in.Value)
			}
		})
		b.Run("CBOR/"+in.Name, func(b *testing.B) {
			b.SetBytes(int64(len(in.Value)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := fxcbor.Marshal(in.Value); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, in := range benchInputs {
		surfEnc := surf.AppendString(nil, in.Value)
		b.Run("SURF/"+in.Name, func(b *testing.B) {
			b.SetBytes(int64(len(surfEnc)))
			b.ReportAllocs()
			for b.Loop() {
				var s string
				if err := surf.Unmarshal(surfEnc, &s); err != nil {
					b.Fatal(err)
				}
			}
		})

		units := surf.NewReaderString(string(surfEnc)).Remaining()
		b.Run("SURFUnits/"+in.Name, func(b *testing.B) {
			b.SetBytes(int64(len(surfEnc)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := surf.NewReaderUnits(units).ReadString(); err != nil {
					b.Fatal(err)
				}
			}
		})

		quoted := strconv.Quote(in.Value)
		b.Run("Strconv/"+in.Name, func(b *testing.B) {
			b.SetBytes(int64(len(quoted)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := strconv.Unquote(quoted); err != nil {
					b.Fatal(err)
				}
			}
		})

		msgpEnc := msgp.AppendString(nil, in.Value)
		b.Run("Msgp/"+in.Name, func(b *testing.B) {
			b.SetBytes(int64(len(msgpEnc)))
			b.ReportAllocs()
			for b.Loop() {
				if _, _, err := msgp.ReadStringBytes(msgpEnc); err != nil {
					b.Fatal(err)
				}
			}
		})

		cborEnc, err := fxcbor.Marshal(in.Value)
		if err != nil {
			b.Fatal(err)
		}
		b.Run("CBOR/"+in.Name, func(b *testing.B) {
			b.SetBytes(int64(len(cborEnc)))
			b.ReportAllocs()
			for b.Loop() {
				var s string
				if err := fxcbor.Unmarshal(cborEnc, &s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkValidate(b *testing.B) {
	for _, in := range benchInputs {
		units := surf.NewReaderString(surf.EncodeLiteral(in.Value, surf.StringDelimiter)).Remaining()
		b.Run(in.Name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if err := surf.ValidateDocument(units); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
