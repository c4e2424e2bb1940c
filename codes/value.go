package codes

import (
	"fmt"

	"github.com/arloliu/cesr/b64"
	"github.com/arloliu/cesr/errs"
)

// encodeAlignedValue renders raw bytes as the value-text portion of an
// atom under code c, applying C1's code-alignment padding.
func encodeAlignedValue(c Code, raw []byte) string {
	return b64.EncodeAligned(c.CodeSize(), raw)
}

// decodeAlignedValue reverses encodeAlignedValue and validates the decoded
// value text is exactly value_size characters and decodes to the expected
// raw byte count.
func decodeAlignedValue(c Code, valueText string) ([]byte, error) {
	if len(valueText) != c.ValueSize {
		return nil, fmt.Errorf("%w: %s expects %d value chars, got %d", errs.ErrIncorrectLength, c, c.ValueSize, len(valueText))
	}

	return b64.DecodeAligned(c.CodeSize(), valueText)
}
