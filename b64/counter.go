package b64

import (
	"fmt"

	"github.com/arloliu/cesr/errs"
)

// digits is the base64-URL digit order: index i is the character whose
// 6-bit value is i.
const digits = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var digitValue [256]int8

func init() {
	for i := range digitValue {
		digitValue[i] = -1
	}
	for i := 0; i < len(digits); i++ {
		digitValue[digits[i]] = int8(i)
	}
}

// NumToB64 renders n as a fixed-width base64 counter, left-padded with 'A'
// (the zero digit). It implements CESR's adjust_with_num / num_to_b64: the
// soft_size counter embedded after a code's hard part, and the quadlet/child
// counts on group and variable-length codes.
func NumToB64(n uint64, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = digits[n&0x3f]
		n >>= 6
	}

	return string(buf)
}

// B64ToNum parses a fixed-width base64 counter back into its integer value.
func B64ToNum(text string) (uint64, error) {
	var n uint64
	for i := 0; i < len(text); i++ {
		v := digitValue[text[i]]
		if v < 0 {
			return 0, fmt.Errorf("%w: invalid base64 counter digit %q in %q", errs.ErrBase64Decode, text[i], text)
		}
		n = n<<6 | uint64(v)
	}

	return n, nil
}
