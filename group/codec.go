package group

import (
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/cesr/codes"
	"github.com/arloliu/cesr/errs"
	"github.com/arloliu/cesr/primitive"
	"github.com/arloliu/cesr/value"
	"github.com/arloliu/cesr/variable"
)

// ValueParser parses one generic Value from the head of stream. The TSP
// payload shape's children are arbitrary Values (spec.md's
// "many0(parse_value)"), a concept this package cannot resolve itself
// without importing the stream package that depends on group in turn;
// callers in that position pass their own parse_value down.
type ValueParser func(stream string) (value.Value, string, error)

// ValueEncoder renders one generic Value, the TSP payload shape's
// encoding-side counterpart to ValueParser.
type ValueEncoder func(v value.Value) (string, error)

var identifierTable = func() []codes.Code {
	t := make([]codes.Code, 0, len(codes.Basic)+len(codes.SelfAddressing))
	t = append(t, codes.Basic...)
	t = append(t, codes.SelfAddressing...)

	return t
}()

// Encode renders g as its canonical count-code text. encodeValue is only
// consulted for the TSP-payload shape; pass nil for any other shape.
func Encode(g value.Group, encodeValue ValueEncoder) (string, error) {
	switch g.Shape {
	case value.ShapeIndexedControllerSigs, value.ShapeIndexedWitnessSigs:
		body, err := encodeIndexedSigs(g.IndexedSigs)
		if err != nil {
			return "", err
		}
		head, err := encodeHead(g.Shape, len(g.IndexedSigs))
		if err != nil {
			return "", err
		}

		return head + body, nil

	case value.ShapeNonTransReceiptCouples:
		head, err := encodeHead(g.Shape, len(g.KeySigCouples))
		if err != nil {
			return "", err
		}

		return head + encodeKeySigCouples(g.KeySigCouples), nil

	case value.ShapeFirstSeenReplyCouples:
		head, err := encodeHead(g.Shape, len(g.SerialStamp))
		if err != nil {
			return "", err
		}

		return head + encodeSerialStamp(g.SerialStamp), nil

	case value.ShapeSealSourceCouples:
		head, err := encodeHead(g.Shape, len(g.SerialDigest))
		if err != nil {
			return "", err
		}

		return head + encodeSerialDigest(g.SerialDigest), nil

	case value.ShapeAnchorSeals:
		head, err := encodeHead(g.Shape, len(g.AnchorSeals))
		if err != nil {
			return "", err
		}

		return head + encodeAnchorSeals(g.AnchorSeals), nil

	case value.ShapeTransIndexedSigGroups:
		body, err := encodeTransSigGroups(g.TransSigGroups)
		if err != nil {
			return "", err
		}
		head, err := encodeHead(g.Shape, len(g.TransSigGroups))
		if err != nil {
			return "", err
		}

		return head + body, nil

	case value.ShapeTransLastIdxSigGroups:
		body, err := encodeTransLastSigs(g.TransLastSigs)
		if err != nil {
			return "", err
		}
		head, err := encodeHead(g.Shape, len(g.TransLastSigs))
		if err != nil {
			return "", err
		}

		return head + body, nil

	case value.ShapeFrame:
		body, err := encodeGroupList(g.Frames)
		if err != nil {
			return "", err
		}

		return encodeQuadletHead(g.Shape, body)

	case value.ShapePathedMaterial:
		if g.Pathed == nil {
			return "", fmt.Errorf("%w: pathed-material group missing its path", errs.ErrIncorrectLength)
		}
		pathText, err := variable.ToCesr(g.Pathed.Path)
		if err != nil {
			return "", err
		}
		tail, err := encodeGroupList(g.Pathed.Groups)
		if err != nil {
			return "", err
		}

		return encodeQuadletHead(g.Shape, pathText+tail)

	case value.ShapeTSPPayload:
		if encodeValue == nil {
			return "", fmt.Errorf("%w: TSP payload group requires a value encoder", errs.ErrSerialization)
		}
		var sb strings.Builder
		for _, v := range g.TSPValues {
			text, err := encodeValue(v)
			if err != nil {
				return "", err
			}
			sb.WriteString(text)
		}

		return encodeQuadletHead(g.Shape, sb.String())

	default:
		return "", fmt.Errorf("%w: unrecognized group shape %s", errs.ErrUnknownCode, g.Shape)
	}
}

func encodeQuadletHead(shape value.GroupShape, body string) (string, error) {
	if len(body)%4 != 0 {
		return "", fmt.Errorf("%w: group body length %d is not quadlet-aligned", errs.ErrIncorrectLength, len(body))
	}
	head, err := encodeHead(shape, len(body)/4)
	if err != nil {
		return "", err
	}

	return head + body, nil
}

func encodeGroupList(groups []value.Group) (string, error) {
	var sb strings.Builder
	for _, g := range groups {
		text, err := Encode(g, nil)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

func encodeIndexedSigs(entries []value.IndexedSigEntry) (string, error) {
	var sb strings.Builder
	for _, e := range entries {
		text, err := codes.EncodeIndexedSignature(e.Shape, e.Sig, e.Indices...)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

func encodeKeySigCouples(couples []value.KeySigCouple) string {
	var sb strings.Builder
	for _, c := range couples {
		sb.WriteString(primitive.Encode(c.Key))
		sb.WriteString(primitive.Encode(c.Sig))
	}

	return sb.String()
}

func encodeSerialDigest(couples []value.SerialDigestCouple) string {
	var sb strings.Builder
	for _, c := range couples {
		sb.WriteString(codes.PackSerialNumber(c.Serial))
		sb.WriteString(primitive.Encode(c.Digest))
	}

	return sb.String()
}

func encodeSerialStamp(couples []value.SerialTimestampCouple) string {
	var sb strings.Builder
	for _, c := range couples {
		sb.WriteString(codes.PackSerialNumber(c.Serial))
		sb.WriteString(codes.EncodeTimestamp(c.Timestamp))
	}

	return sb.String()
}

func encodeAnchorSeals(seals []value.AnchorSeal) string {
	var sb strings.Builder
	for _, s := range seals {
		sb.WriteString(primitive.Encode(s.Identifier))
		sb.WriteString(codes.PackSerialNumber(s.Serial))
		sb.WriteString(primitive.Encode(s.Digest))
	}

	return sb.String()
}

func encodeTransSigGroups(groups []value.TransIndexedSigGroup) (string, error) {
	var sb strings.Builder
	for _, g := range groups {
		sb.WriteString(primitive.Encode(g.Identifier))
		sb.WriteString(codes.PackSerialNumber(g.Serial))
		sb.WriteString(primitive.Encode(g.Digest))

		nested, err := Encode(value.Group{Shape: value.ShapeIndexedControllerSigs, IndexedSigs: g.Sigs}, nil)
		if err != nil {
			return "", err
		}
		sb.WriteString(nested)
	}

	return sb.String(), nil
}

func encodeTransLastSigs(groups []value.TransLastIdxSigGroup) (string, error) {
	var sb strings.Builder
	for _, g := range groups {
		sb.WriteString(primitive.Encode(g.Identifier))

		nested, err := Encode(value.Group{Shape: value.ShapeIndexedControllerSigs, IndexedSigs: g.Sigs}, nil)
		if err != nil {
			return "", err
		}
		sb.WriteString(nested)
	}

	return sb.String(), nil
}

// Decode parses one count-code group from the head of stream. parseValue
// is only needed when decoding a TSP-payload group; pass nil otherwise.
func Decode(stream string, parseValue ValueParser) (value.Group, string, error) {
	return decode(stream, parseValue, 0)
}

func decode(stream string, parseValue ValueParser, depth int) (value.Group, string, error) {
	if depth > maxDepth {
		return value.Group{}, stream, errs.ErrMaxDepthExceeded
	}

	shape, n, rest, err := decodeHead(stream)
	if err != nil {
		return value.Group{}, stream, err
	}

	letter := letterByShape[shape]
	code := "-" + string(letter)

	if quadletShapes[shape] {
		bodyLen := n * 4
		if len(rest) < bodyLen {
			return value.Group{}, stream, errs.ErrIncomplete
		}
		body := rest[:bodyLen]
		tail := rest[bodyLen:]

		g, err := decodeQuadletShape(shape, code, body, parseValue, depth)
		if err != nil {
			return value.Group{}, stream, err
		}

		return g, tail, nil
	}

	return decodeCountedShape(shape, code, n, rest)
}

func decodeQuadletShape(shape value.GroupShape, code, body string, parseValue ValueParser, depth int) (value.Group, error) {
	switch shape {
	case value.ShapeFrame:
		groups, err := decodeGroupList(body, parseValue, depth+1)
		if err != nil {
			return value.Group{}, err
		}

		return value.Group{Shape: shape, Code: code, Frames: groups}, nil

	case value.ShapePathedMaterial:
		path, rest, err := variable.DecodeMaterialPath(body)
		if err != nil {
			return value.Group{}, err
		}
		groups, err := decodeGroupList(rest, parseValue, depth+1)
		if err != nil {
			return value.Group{}, err
		}

		return value.Group{Shape: shape, Code: code, Pathed: &value.PathedMaterial{Path: path, Groups: groups}}, nil

	case value.ShapeTSPPayload:
		if parseValue == nil {
			return value.Group{}, fmt.Errorf("%w: TSP payload group requires a value parser", errs.ErrParse)
		}
		values := make([]value.Value, 0)
		remaining := body
		for remaining != "" {
			v, rest, err := parseValue(remaining)
			if err != nil {
				return value.Group{}, err
			}
			values = append(values, v)
			remaining = rest
		}

		return value.Group{Shape: shape, Code: code, TSPValues: values}, nil

	default:
		return value.Group{}, fmt.Errorf("%w: unrecognized quadlet group shape %s", errs.ErrUnknownCode, shape)
	}
}

func decodeGroupList(body string, parseValue ValueParser, depth int) ([]value.Group, error) {
	groups := make([]value.Group, 0)
	remaining := body
	for remaining != "" {
		g, rest, err := decode(remaining, parseValue, depth)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
		remaining = rest
	}

	return groups, nil
}

func decodeCountedShape(shape value.GroupShape, code string, n int, body string) (value.Group, string, error) {
	switch shape {
	case value.ShapeIndexedControllerSigs, value.ShapeIndexedWitnessSigs:
		entries := make([]value.IndexedSigEntry, 0, n)
		remaining := body
		for i := 0; i < n; i++ {
			shapeVal, sig, indices, rest, err := codes.DecodeIndexedSignatureFromStream(remaining)
			if err != nil {
				return value.Group{}, body, err
			}
			entries = append(entries, value.IndexedSigEntry{Shape: shapeVal, Sig: sig, Indices: indices})
			remaining = rest
		}

		return value.Group{Shape: shape, Code: code, IndexedSigs: entries}, remaining, nil

	case value.ShapeNonTransReceiptCouples:
		couples := make([]value.KeySigCouple, 0, n)
		remaining := body
		for i := 0; i < n; i++ {
			key, rest, err := primitive.DecodeIn(codes.Basic, remaining)
			if err != nil {
				return value.Group{}, body, err
			}
			sig, rest2, err := primitive.DecodeIn(codes.SelfSigning, rest)
			if err != nil {
				return value.Group{}, body, err
			}
			couples = append(couples, value.KeySigCouple{Key: key, Sig: sig})
			remaining = rest2
		}

		return value.Group{Shape: shape, Code: code, KeySigCouples: couples}, remaining, nil

	case value.ShapeFirstSeenReplyCouples:
		couples := make([]value.SerialTimestampCouple, 0, n)
		remaining := body
		for i := 0; i < n; i++ {
			serial, rest, err := decodeSerial(remaining)
			if err != nil {
				return value.Group{}, body, err
			}
			stamp, rest2, err := decodeTimestamp(rest)
			if err != nil {
				return value.Group{}, body, err
			}
			couples = append(couples, value.SerialTimestampCouple{Serial: serial, Timestamp: stamp})
			remaining = rest2
		}

		return value.Group{Shape: shape, Code: code, SerialStamp: couples}, remaining, nil

	case value.ShapeSealSourceCouples:
		couples := make([]value.SerialDigestCouple, 0, n)
		remaining := body
		for i := 0; i < n; i++ {
			serial, rest, err := decodeSerial(remaining)
			if err != nil {
				return value.Group{}, body, err
			}
			digest, rest2, err := primitive.DecodeIn(codes.SelfAddressing, rest)
			if err != nil {
				return value.Group{}, body, err
			}
			couples = append(couples, value.SerialDigestCouple{Serial: serial, Digest: digest})
			remaining = rest2
		}

		return value.Group{Shape: shape, Code: code, SerialDigest: couples}, remaining, nil

	case value.ShapeAnchorSeals:
		seals := make([]value.AnchorSeal, 0, n)
		remaining := body
		for i := 0; i < n; i++ {
			id, rest, err := primitive.DecodeIn(identifierTable, remaining)
			if err != nil {
				return value.Group{}, body, err
			}
			serial, rest2, err := decodeSerial(rest)
			if err != nil {
				return value.Group{}, body, err
			}
			digest, rest3, err := primitive.DecodeIn(codes.SelfAddressing, rest2)
			if err != nil {
				return value.Group{}, body, err
			}
			seals = append(seals, value.AnchorSeal{Identifier: id, Serial: serial, Digest: digest})
			remaining = rest3
		}

		return value.Group{Shape: shape, Code: code, AnchorSeals: seals}, remaining, nil

	case value.ShapeTransIndexedSigGroups:
		groups := make([]value.TransIndexedSigGroup, 0, n)
		remaining := body
		for i := 0; i < n; i++ {
			id, rest, err := primitive.DecodeIn(identifierTable, remaining)
			if err != nil {
				return value.Group{}, body, err
			}
			serial, rest2, err := decodeSerial(rest)
			if err != nil {
				return value.Group{}, body, err
			}
			digest, rest3, err := primitive.DecodeIn(codes.SelfAddressing, rest2)
			if err != nil {
				return value.Group{}, body, err
			}
			nested, rest4, err := decode(rest3, nil, 0)
			if err != nil {
				return value.Group{}, body, err
			}
			if nested.Shape != value.ShapeIndexedControllerSigs {
				return value.Group{}, body, fmt.Errorf("%w: expected a nested controller signature group", errs.ErrParse)
			}
			groups = append(groups, value.TransIndexedSigGroup{Identifier: id, Serial: serial, Digest: digest, Sigs: nested.IndexedSigs})
			remaining = rest4
		}

		return value.Group{Shape: shape, Code: code, TransSigGroups: groups}, remaining, nil

	case value.ShapeTransLastIdxSigGroups:
		groups := make([]value.TransLastIdxSigGroup, 0, n)
		remaining := body
		for i := 0; i < n; i++ {
			id, rest, err := primitive.DecodeIn(identifierTable, remaining)
			if err != nil {
				return value.Group{}, body, err
			}
			nested, rest2, err := decode(rest, nil, 0)
			if err != nil {
				return value.Group{}, body, err
			}
			if nested.Shape != value.ShapeIndexedControllerSigs {
				return value.Group{}, body, fmt.Errorf("%w: expected a nested controller signature group", errs.ErrParse)
			}
			groups = append(groups, value.TransLastIdxSigGroup{Identifier: id, Sigs: nested.IndexedSigs})
			remaining = rest2
		}

		return value.Group{Shape: shape, Code: code, TransLastSigs: groups}, remaining, nil

	default:
		return value.Group{}, body, fmt.Errorf("%w: unrecognized counted group shape %s", errs.ErrUnknownCode, shape)
	}
}

func decodeSerial(stream string) (uint64, string, error) {
	n := codes.Serial.FullSize()
	if len(stream) < n {
		return 0, stream, errs.ErrIncomplete
	}
	v, err := codes.UnpackSerialNumber(stream[:n])
	if err != nil {
		return 0, stream, err
	}

	return v, stream[n:], nil
}

func decodeTimestamp(stream string) (time.Time, string, error) {
	n := codes.Timestamp.FullSize()
	if len(stream) < n {
		return time.Time{}, stream, errs.ErrIncomplete
	}
	t, err := codes.DecodeTimestamp(stream[:n])
	if err != nil {
		return time.Time{}, stream, err
	}

	return t, stream[n:], nil
}
