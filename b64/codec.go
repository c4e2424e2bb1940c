package b64

import (
	"encoding/base64"
	"fmt"

	"github.com/arloliu/cesr/errs"
)

// Encoding is the base64-URL alphabet without padding that every CESR text
// atom is built from.
var Encoding = base64.RawURLEncoding

// ToText encodes raw bytes to base64-URL-no-padding text.
func ToText(raw []byte) string {
	return Encoding.EncodeToString(raw)
}

// AppendText appends the base64-URL-no-padding text encoding of raw to dst
// and returns the extended buffer, avoiding an intermediate string allocation.
func AppendText(dst []byte, raw []byte) []byte {
	return Encoding.AppendEncode(dst, raw)
}

// FromText decodes base64-URL-no-padding text to raw bytes.
func FromText(text string) ([]byte, error) {
	out, err := Encoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrBase64Decode, err)
	}

	return out, nil
}

// EncodedLen returns the number of base64 text characters n raw bytes
// encode to under the no-padding alphabet.
func EncodedLen(n int) int {
	return Encoding.EncodedLen(n)
}
