package stream

import (
	"fmt"

	"github.com/arloliu/cesr/b64"
	"github.com/arloliu/cesr/codes"
	"github.com/arloliu/cesr/errs"
	"github.com/arloliu/cesr/group"
	"github.com/arloliu/cesr/payload"
	"github.com/arloliu/cesr/primitive"
	"github.com/arloliu/cesr/value"
	"github.com/arloliu/cesr/variable"
)

// genusCodeLen is the width of the 7-char genus/version code that
// follows the leading '-' (spec.md §4.7): the '_' marker, 3 genus chars,
// 1 major-version char, 2 minor-version chars.
const genusCodeLen = 7

// ParseValue parses exactly one Value from the head of stream and
// returns the unconsumed remainder (spec.md §4.7's parse_value).
// Dispatch follows stream[0]:
//
//   - '{' or a CBOR/MessagePack leading byte (0x80-0xDF): the payload sniffer.
//   - '-': a genus/version code, a universal group, or a shape-specific
//     count group, depending on stream[1].
//   - '4'..'9': a variable-length primitive.
//   - ASCII alphanumeric: a coded primitive, tried across families in
//     spec.md §4.2's dispatch order.
//   - anything else: ParseError.
func ParseValue(stream string) (value.Value, string, error) {
	if stream == "" {
		return value.Value{}, stream, errs.ErrEmptyStream
	}

	head := stream[0]

	switch {
	case head == '{' || isPayloadHead(head):
		p, rest, err := payload.Sniff([]byte(stream))
		if err != nil {
			return value.Value{}, stream, err
		}

		return value.Value{Kind: value.KindPayload, Payload: p}, string(rest), nil

	case head == '-':
		return parseDash(stream)

	case head >= '4' && head <= '9':
		v, rest, err := variable.Decode(stream)
		if err != nil {
			return value.Value{}, stream, err
		}

		return value.Value{Kind: value.KindVariableLengthRaw, VarLen: v}, rest, nil

	case isAlnum(head):
		return parsePrimitive(stream)

	default:
		return value.Value{}, stream, fmt.Errorf("%w: unrecognized leading byte 0x%02X", errs.ErrParse, head)
	}
}

func isPayloadHead(b byte) bool {
	return b >= 0x80 && b <= 0xDF
}

func isAlnum(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func parsePrimitive(stream string) (value.Value, string, error) {
	p, rest, err := primitive.DecodeAny(stream)
	if err != nil {
		return value.Value{}, stream, err
	}

	if p.Code.Family == codes.FamilyTag {
		tagText, err := codes.DecodeTag(stream[:p.Code.FullSize()])
		if err != nil {
			return value.Value{}, stream, err
		}

		return value.Value{Kind: value.KindTag, Tag: tagText}, rest, nil
	}

	return value.Value{Kind: value.KindPrimitive, Prim: p}, rest, nil
}

func parseDash(stream string) (value.Value, string, error) {
	if len(stream) < 2 {
		return value.Value{}, stream, errs.ErrIncomplete
	}

	switch stream[1] {
	case '_':
		return parseGenus(stream)
	case 'A', 'B', 'C':
		return parseUniversalGroup(stream)
	default:
		g, rest, err := group.Decode(stream, ParseValue)
		if err != nil {
			return value.Value{}, stream, err
		}

		return value.Value{Kind: value.KindSpecificGroup, Specific: g}, rest, nil
	}
}

func parseGenus(stream string) (value.Value, string, error) {
	full := 1 + genusCodeLen // leading '-' plus the 7-char genus code
	if len(stream) < full {
		return value.Value{}, stream, errs.ErrIncomplete
	}

	genus := stream[2:5]

	major, err := b64.B64ToNum(stream[5:6])
	if err != nil {
		return value.Value{}, stream, err
	}
	minor, err := b64.B64ToNum(stream[6:8])
	if err != nil {
		return value.Value{}, stream, err
	}

	v := value.VersionGenus{Genus: genus, Major: byte(major), Minor: byte(minor)}

	return value.Value{Kind: value.KindVersionGenus, Genus: v}, stream[full:], nil
}

// parseUniversalGroup parses an override-allowed universal group
// (spec.md §4.7): a 4-char head ("-" plus letter plus a 2-char quadlet
// counter), a body of exactly that many quadlets, and at least one
// nested Value consuming the body exactly (many1, not many0).
func parseUniversalGroup(stream string) (value.Value, string, error) {
	if len(stream) < 4 {
		return value.Value{}, stream, errs.ErrIncomplete
	}

	letter := stream[1]

	quadlets, err := b64.B64ToNum(stream[2:4])
	if err != nil {
		return value.Value{}, stream, err
	}

	bodyLen := int(quadlets) * 4
	if len(stream) < 4+bodyLen {
		return value.Value{}, stream, errs.ErrIncomplete
	}

	body := stream[4 : 4+bodyLen]
	tail := stream[4+bodyLen:]

	children := make([]value.Value, 0)
	remaining := body
	for remaining != "" {
		v, rest, err := ParseValue(remaining)
		if err != nil {
			return value.Value{}, stream, err
		}
		children = append(children, v)
		remaining = rest
	}

	if len(children) == 0 {
		return value.Value{}, stream, fmt.Errorf("%w: universal group %q has no children", errs.ErrParse, stream[:4])
	}

	return value.Value{
		Kind:      value.KindUniversalGroup,
		Universal: value.UniversalGroup{Code: string(letter), Children: children},
	}, tail, nil
}

// ParseAll repeatedly applies ParseValue until stream is exhausted or a
// parse error halts the loop (spec.md §4.7's "parse_all(stream) =
// many0(parse_value)"). It returns every Value parsed before the error,
// the unconsumed remainder, and the error itself (nil on full success).
func ParseAll(stream string) ([]value.Value, string, error) {
	values := make([]value.Value, 0)
	remaining := stream

	for remaining != "" {
		v, rest, err := ParseValue(remaining)
		if err != nil {
			return values, remaining, err
		}
		values = append(values, v)
		remaining = rest
	}

	return values, remaining, nil
}
