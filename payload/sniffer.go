package payload

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/arloliu/cesr/errs"
	"github.com/arloliu/cesr/value"
)

// Sniff identifies the format of the payload at the head of stream from
// its first byte (spec.md §4.6's table), decodes exactly one value with
// that format's streaming decoder, and returns the consumed bytes as a
// value.Payload plus the unconsumed remainder of stream. It never
// inspects the payload's fields: a malformed but well-framed payload
// still sniffs successfully, and only the format's own decoder decides
// where the value ends.
func Sniff(stream []byte) (value.Payload, []byte, error) {
	if len(stream) == 0 {
		return value.Payload{}, stream, errs.ErrEmptyStream
	}

	switch classify(stream[0]) {
	case value.FormatJSON:
		return sniffJSON(stream)
	case value.FormatCBOR:
		return sniffCBOR(stream)
	case value.FormatMGPK:
		return sniffMsgpack(stream)
	default:
		return value.Payload{}, stream, fmt.Errorf("%w: leading byte 0x%02X matches no known payload format", errs.ErrUnrecognizedPayload, stream[0])
	}
}

// classify maps the leading byte to a format per spec.md §4.6's table
// and the three-top-bits dispatch it's drawn from: '{' (0b011) for
// JSON, 0xA0-0xBF (0b101, CBOR map headers) for CBOR, and both
// 0x80-0x9F (0b100, MessagePack fixmap/fixarray) and 0xC0-0xDF (0b110,
// every other MessagePack tagged type, including the map16/map32
// headers a record with more than 15 top-level fields produces) for
// MGPK.
func classify(b byte) value.Format {
	switch {
	case b == '{':
		return value.FormatJSON
	case b >= 0xA0 && b <= 0xBF:
		return value.FormatCBOR
	case b >= 0x80 && b <= 0x9F:
		return value.FormatMGPK
	case b >= 0xC0 && b <= 0xDF:
		return value.FormatMGPK
	default:
		return value.Format(255)
	}
}

func sniffJSON(stream []byte) (value.Payload, []byte, error) {
	r := bytes.NewReader(stream)
	dec := json.NewDecoder(r)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return value.Payload{}, stream, fmt.Errorf("%w: %s", errs.ErrUnrecognizedPayload, err)
	}

	offset := dec.InputOffset()

	return value.Payload{Format: value.FormatJSON, Bytes: stream[:offset]}, stream[offset:], nil
}

func sniffCBOR(stream []byte) (value.Payload, []byte, error) {
	dec := cbor.NewDecoder(bytes.NewReader(stream))

	var raw cbor.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return value.Payload{}, stream, fmt.Errorf("%w: %s", errs.ErrUnrecognizedPayload, err)
	}

	offset := dec.NumBytesRead()

	return value.Payload{Format: value.FormatCBOR, Bytes: stream[:offset]}, stream[offset:], nil
}

// sniffMsgpack decodes one value with msgpack.Decoder reading directly
// from a bytes.Reader (no intermediate bufio layer), then infers the
// consumed span from how far the reader advanced. MessagePack's decoder
// reads byte-by-byte as it walks the value's structure rather than
// pre-buffering ahead, so this holds exactly; see DESIGN.md.
func sniffMsgpack(stream []byte) (value.Payload, []byte, error) {
	r := bytes.NewReader(stream)
	dec := msgpack.NewDecoder(r)

	if _, err := dec.DecodeInterface(); err != nil {
		return value.Payload{}, stream, fmt.Errorf("%w: %s", errs.ErrUnrecognizedPayload, err)
	}

	offset := len(stream) - r.Len()

	return value.Payload{Format: value.FormatMGPK, Bytes: stream[:offset]}, stream[offset:], nil
}
