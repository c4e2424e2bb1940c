package b64

import (
	"fmt"
	"strings"

	"github.com/arloliu/cesr/errs"
)

// Lead returns the number of padding bytes ("lead bytes") a code of the
// given character width needs so its value text sits on a quadlet boundary.
//
// A code_size that is not a multiple of 4 leaves the raw value's own base64
// encoding mis-aligned by exactly codeSize%4 base64 characters; prepending
// that many zero bytes before encoding, then dropping that many characters
// of the result, absorbs the misalignment without touching any real bits
// (the dropped characters are always 'A', the zero-value digit).
func Lead(codeSize int) int {
	return codeSize % 4
}

// EncodeAligned builds the value-text portion of a primitive whose code is
// codeSize characters wide. It prepends Lead(codeSize) zero bytes to raw,
// base64-encodes the result, and drops that many leading characters (which
// are always 'A', since they come entirely from the zero padding).
//
// An empty raw slice returns an empty string: CESR primitives with a
// zero-length derivative carry no value text at all, not a padded one.
func EncodeAligned(codeSize int, raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	lead := Lead(codeSize)
	if lead == 0 {
		return ToText(raw)
	}

	padded := make([]byte, lead+len(raw))
	copy(padded[lead:], raw)

	return ToText(padded)[lead:]
}

// DecodeAligned reverses EncodeAligned: given the codeSize of the code that
// preceded valueText, it reconstructs the dropped zero-value lead
// characters, base64-decodes the result, and discards the lead padding
// bytes to recover the original raw value.
func DecodeAligned(codeSize int, valueText string) ([]byte, error) {
	if valueText == "" {
		return nil, nil
	}

	lead := Lead(codeSize)
	if lead == 0 {
		return FromText(valueText)
	}

	padded, err := FromText(strings.Repeat("A", lead) + valueText)
	if err != nil {
		return nil, fmt.Errorf("%w: aligned value %q: %s", errs.ErrBase64Decode, valueText, err)
	}

	if len(padded) < lead {
		return nil, fmt.Errorf("%w: aligned value %q decodes shorter than lead %d", errs.ErrIncorrectLength, valueText, lead)
	}

	return padded[lead:], nil
}
