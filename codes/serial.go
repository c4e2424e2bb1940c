package codes

import (
	"fmt"

	"github.com/arloliu/cesr/endian"
	"github.com/arloliu/cesr/errs"
)

var serialByteOrder = endian.GetBigEndianEngine()

// Serial is the 128-bit random-like primitive family used for salts,
// nonces, and serial numbers (spec.md §3 "Seed/salt/nonce/serial (0A)"
// and §8 scenario 1's pack_sn). A single code covers all three uses: the
// 16-byte value, 2-char hard code, 22-char value text (lead=2).
var Serial = Code{Family: FamilySerial, Name: "Salt_Nonce_Serial", Text: "0A", ValueSize: 22}

// PackSerialNumber renders n as the canonical 24-character "0A..." text:
// a 16-byte big-endian integer under the Serial code. This is the
// pack_sn operation of spec.md §8 scenario 1.
func PackSerialNumber(n uint64) string {
	raw := make([]byte, 16)
	serialByteOrder.PutUint64(raw[8:], n)

	return Serial.Text + encodeAlignedValue(Serial, raw)
}

// UnpackSerialNumber parses a "0A..." text back into its integer value. It
// fails with errs.ErrIncorrectLength if the leading 8 bytes (the part of
// the 16-byte value outside a uint64's range) carry a nonzero value too
// large to represent.
func UnpackSerialNumber(text string) (uint64, error) {
	if len(text) < len(Serial.Text) || text[:len(Serial.Text)] != Serial.Text {
		return 0, fmt.Errorf("%w: %q is not a Serial code", errs.ErrUnknownCode, text)
	}

	raw, err := decodeAlignedValue(Serial, text[len(Serial.Text):])
	if err != nil {
		return 0, err
	}

	for _, b := range raw[:8] {
		if b != 0 {
			return 0, fmt.Errorf("%w: serial number %q overflows uint64", errs.ErrIncorrectLength, text)
		}
	}

	return serialByteOrder.Uint64(raw[8:]), nil
}
