// Package primitive implements the single (code, raw bytes) atom codec
// (spec.md §4.3, component C3): the layer above b64's alignment scheme and
// codes' tables that knows how to turn a Code plus raw bytes into canonical
// CESR text, and back.
package primitive

import (
	"fmt"

	"github.com/arloliu/cesr/b64"
	"github.com/arloliu/cesr/codes"
	"github.com/arloliu/cesr/errs"
)

// Primitive is a decoded (code, raw bytes) atom.
type Primitive struct {
	Code codes.Code
	Raw  []byte
}

// Encode builds the canonical text of p. A zero-length Raw encodes to the
// empty string, never a code-only prefix (spec.md §8 boundary behavior).
func Encode(p Primitive) string {
	if len(p.Raw) == 0 {
		return ""
	}

	return p.Code.Text + b64.EncodeAligned(p.Code.CodeSize(), p.Raw)
}

// Decode parses one primitive of the given code from the head of stream,
// returning the decoded Primitive and the unconsumed remainder.
//
// Fails with errs.ErrUnknownCode when stream's prefix does not match
// code's text, or errs.ErrIncomplete when stream is shorter than the
// code's full_size.
func Decode(code codes.Code, stream string) (Primitive, string, error) {
	if len(stream) < len(code.Text) || stream[:len(code.Text)] != code.Text {
		return Primitive{}, stream, fmt.Errorf("%w: expected %s", errs.ErrUnknownCode, code)
	}

	full := code.FullSize()
	if len(stream) < full {
		return Primitive{}, stream, fmt.Errorf("%w: %s needs %d chars, have %d", errs.ErrIncomplete, code, full, len(stream))
	}

	valueText := stream[code.CodeSize():full]

	raw, err := b64.DecodeAligned(code.CodeSize(), valueText)
	if err != nil {
		return Primitive{}, stream, err
	}

	return Primitive{Code: code, Raw: raw}, stream[full:], nil
}

// DecodeAny resolves stream's leading code across every family (spec.md
// §4.2's dispatch order) before decoding. Use this only when the caller has
// no narrower context; a parser that already knows the expected family
// (group children, for instance) should prefer DecodeIn.
func DecodeAny(stream string) (Primitive, string, error) {
	code, err := codes.Find(stream)
	if err != nil {
		return Primitive{}, stream, err
	}

	return Decode(code, stream)
}

// DecodeIn resolves stream's leading code against table only, then
// decodes. Group shapes that expect a specific family's primitive (a
// digest, a basic key, a signature) use this so a malformed stream can
// never resolve to some unrelated family's code.
func DecodeIn(table []codes.Code, stream string) (Primitive, string, error) {
	code, ok := codes.FindInTable(table, stream)
	if !ok {
		return Primitive{}, stream, fmt.Errorf("%w: %q matches no code in the expected table", errs.ErrUnknownCode, stream)
	}

	return Decode(code, stream)
}
