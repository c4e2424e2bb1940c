package value

import (
	"github.com/arloliu/cesr/primitive"
	"github.com/arloliu/cesr/variable"
)

// Kind discriminates the seven variants of Value (spec.md §3 "Value (the
// decoded atom)").
type Kind uint8

const (
	KindPayload Kind = iota
	KindPrimitive
	KindTag
	KindVersionGenus
	KindUniversalGroup
	KindSpecificGroup
	KindVariableLengthRaw
)

func (k Kind) String() string {
	switch k {
	case KindPayload:
		return "Payload"
	case KindPrimitive:
		return "Primitive"
	case KindTag:
		return "Tag"
	case KindVersionGenus:
		return "VersionGenus"
	case KindUniversalGroup:
		return "UniversalGroup"
	case KindSpecificGroup:
		return "SpecificGroup"
	case KindVariableLengthRaw:
		return "VariableLengthRaw"
	default:
		return "Unknown"
	}
}

// Format identifies the serialization of a Payload value (spec.md §4.6).
type Format uint8

const (
	FormatJSON Format = iota
	FormatCBOR
	FormatMGPK
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatCBOR:
		return "CBOR"
	case FormatMGPK:
		return "MGPK"
	default:
		return "Unknown"
	}
}

// Payload is a sniffed, opaque serialized record (spec.md §4.6): the
// sniffer identifies Format and the exact byte span, but never interprets
// the bytes further.
type Payload struct {
	Format Format
	Bytes  []byte
}

// VersionGenus is the 7-char genus/version code (spec.md §4.7:
// "_AAA<major><minor minor>") introducing a protocol genus and its
// major/minor version.
type VersionGenus struct {
	Genus string // 3-char protocol genus, e.g. "AAA"
	Major byte
	Minor byte
}

// UniversalGroup is an override-allowed count group (spec.md "Universal
// group"): a 3-char head plus a quadlet-length body of further Values.
type UniversalGroup struct {
	Code     string
	Children []Value
}

// Value is the decoded atom: exactly one of the fields named by Kind is
// meaningful.
type Value struct {
	Kind      Kind
	Payload   Payload
	Prim      primitive.Primitive
	Tag       string
	Genus     VersionGenus
	Universal UniversalGroup
	Specific  Group
	VarLen    variable.Value
}
