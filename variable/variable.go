package variable

import (
	"fmt"

	"github.com/arloliu/cesr/b64"
	"github.com/arloliu/cesr/errs"
)

// InnerType identifies the payload carried by a variable-length
// primitive (spec.md §4.4): a base64 string, or an HPKE cipher payload in
// base or auth mode.
type InnerType uint8

const (
	Base64String InnerType = iota
	HPKEBase
	HPKEAuth
)

func (t InnerType) shortCode() string {
	switch t {
	case HPKEBase:
		return "F"
	case HPKEAuth:
		return "G"
	default:
		return "A"
	}
}

func (t InnerType) longCode() string {
	switch t {
	case HPKEBase:
		return "AAF"
	case HPKEAuth:
		return "AAG"
	default:
		return "AAA"
	}
}

// maxShortQuadlets is the largest quadlet count a 2-char counter can hold
// (64^2 - 1); values above this threshold require the long form.
const maxShortQuadlets = 4095

// Value is a decoded variable-length primitive: its inner type, the
// number of lead padding bytes its alignment required, and the raw value
// bytes with that padding already stripped.
type Value struct {
	Type  InnerType
	Lead  int // 0, 1, or 2
	Value []byte
}

// leadForByteCount returns the lead-byte count (0, 1, or 2) that aligns n
// bytes of raw value to a quadlet boundary once base64-encoded, per the
// "Create from bytes" rule of spec.md §4.4.
func leadForByteCount(n int) int {
	lead := (3 - n%3) % 3

	return lead
}

// FromBytes builds a Value directly from raw bytes (spec.md §4.4 "Create
// from bytes").
func FromBytes(t InnerType, raw []byte) Value {
	return Value{Type: t, Lead: leadForByteCount(len(raw)), Value: raw}
}

// quadletsForValue returns the number of quadlets (lead bytes plus value
// bytes, each group of 3 bytes becoming one quadlet) a Value's payload
// occupies.
func quadletsForValue(v Value) int {
	return (v.Lead + len(v.Value)) / 3
}

// Encode renders v as its canonical "<head><type><counter><payload>"
// text. It selects the short form when the quadlet count fits a 2-char
// counter, the long form otherwise.
func Encode(v Value) (string, error) {
	quadlets := quadletsForValue(v)

	padded := make([]byte, v.Lead+len(v.Value))
	copy(padded[v.Lead:], v.Value)
	payload := b64.ToText(padded)

	if quadlets <= maxShortQuadlets {
		head := shortHead(v.Lead)
		if head == "" {
			return "", fmt.Errorf("%w: invalid lead byte count %d", errs.ErrUnknownCode, v.Lead)
		}

		return head + v.Type.shortCode() + b64.NumToB64(uint64(quadlets), 2) + payload, nil
	}

	head := longHead(v.Lead)
	if head == "" {
		return "", fmt.Errorf("%w: invalid lead byte count %d", errs.ErrUnknownCode, v.Lead)
	}

	return head + v.Type.longCode() + b64.NumToB64(uint64(quadlets), 4) + payload, nil
}

func shortHead(lead int) string {
	switch lead {
	case 0:
		return "4"
	case 1:
		return "5"
	case 2:
		return "6"
	default:
		return ""
	}
}

func longHead(lead int) string {
	switch lead {
	case 0:
		return "7"
	case 1:
		return "8"
	case 2:
		return "9"
	default:
		return ""
	}
}

func leadForHead(head byte) (int, bool) {
	switch head {
	case '4', '7':
		return 0, true
	case '5', '8':
		return 1, true
	case '6', '9':
		return 2, true
	default:
		return 0, false
	}
}

func innerTypeForCode(short bool, code string) (InnerType, bool) {
	if short {
		switch code {
		case "A":
			return Base64String, true
		case "F":
			return HPKEBase, true
		case "G":
			return HPKEAuth, true
		}
	} else {
		switch code {
		case "AAA":
			return Base64String, true
		case "AAF":
			return HPKEBase, true
		case "AAG":
			return HPKEAuth, true
		}
	}

	return 0, false
}

// Decode parses one variable-length primitive from the head of stream,
// returning the decoded Value and the unconsumed remainder.
func Decode(stream string) (Value, string, error) {
	if stream == "" {
		return Value{}, stream, errs.ErrEmptyStream
	}

	lead, ok := leadForHead(stream[0])
	if !ok {
		return Value{}, stream, fmt.Errorf("%w: %q is not a variable-length head", errs.ErrUnknownCode, stream[:1])
	}

	long := stream[0] == '7' || stream[0] == '8' || stream[0] == '9'

	typeWidth := 1
	counterWidth := 2
	if long {
		typeWidth = 3
		counterWidth = 4
	}

	headerLen := 1 + typeWidth + counterWidth
	if len(stream) < headerLen {
		return Value{}, stream, errs.ErrIncomplete
	}

	typeCode := stream[1 : 1+typeWidth]
	t, ok := innerTypeForCode(!long, typeCode)
	if !ok {
		return Value{}, stream, fmt.Errorf("%w: %q is not a recognized inner type", errs.ErrUnknownCode, typeCode)
	}

	counterText := stream[1+typeWidth : headerLen]
	quadlets, err := b64.B64ToNum(counterText)
	if err != nil {
		return Value{}, stream, err
	}

	payloadLen := int(quadlets) * 4
	if len(stream) < headerLen+payloadLen {
		return Value{}, stream, errs.ErrIncomplete
	}

	payloadText := stream[headerLen : headerLen+payloadLen]

	padded, err := b64.FromText(payloadText)
	if err != nil {
		return Value{}, stream, err
	}
	if len(padded) < lead {
		return Value{}, stream, fmt.Errorf("%w: variable-length payload shorter than lead %d", errs.ErrIncorrectLength, lead)
	}

	return Value{Type: t, Lead: lead, Value: padded[lead:]}, stream[headerLen+payloadLen:], nil
}
