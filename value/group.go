package value

import (
	"time"

	"github.com/arloliu/cesr/codes"
	"github.com/arloliu/cesr/primitive"
	"github.com/arloliu/cesr/variable"
)

// GroupShape distinguishes the concrete count-code shapes spec.md §4.5's
// decoding table names. Each shape fixes what a count group's N children
// look like.
type GroupShape uint8

const (
	ShapeIndexedControllerSigs GroupShape = iota
	ShapeIndexedWitnessSigs
	ShapeNonTransReceiptCouples
	ShapeFirstSeenReplyCouples
	ShapeTransIndexedSigGroups
	ShapeSealSourceCouples
	ShapeTransLastIdxSigGroups
	ShapeAnchorSeals
	ShapeFrame
	ShapePathedMaterial
	ShapeTSPPayload
)

func (s GroupShape) String() string {
	switch s {
	case ShapeIndexedControllerSigs:
		return "IndexedControllerSigs"
	case ShapeIndexedWitnessSigs:
		return "IndexedWitnessSigs"
	case ShapeNonTransReceiptCouples:
		return "NonTransReceiptCouples"
	case ShapeFirstSeenReplyCouples:
		return "FirstSeenReplyCouples"
	case ShapeTransIndexedSigGroups:
		return "TransIndexedSigGroups"
	case ShapeSealSourceCouples:
		return "SealSourceCouples"
	case ShapeTransLastIdxSigGroups:
		return "TransLastIdxSigGroups"
	case ShapeAnchorSeals:
		return "AnchorSeals"
	case ShapeFrame:
		return "Frame"
	case ShapePathedMaterial:
		return "PathedMaterial"
	case ShapeTSPPayload:
		return "TSPPayload"
	default:
		return "Unknown"
	}
}

// IndexedSigEntry is one element of an indexed-signature group: the
// signature bytes plus its embedded index or indices (spec.md §3
// "IndexedSignature").
type IndexedSigEntry struct {
	Shape   codes.IndexedShape
	Sig     []byte
	Indices []uint64
}

// KeySigCouple pairs a basic public key with a self-signing signature
// (spec.md's "non-transferable receipt couples").
type KeySigCouple struct {
	Key primitive.Primitive
	Sig primitive.Primitive
}

// SerialDigestCouple pairs a serial number with a digest (spec.md's "seal
// source couples").
type SerialDigestCouple struct {
	Serial uint64
	Digest primitive.Primitive
}

// SerialTimestampCouple pairs a serial number with a timestamp (spec.md's
// "first-seen reply couples").
type SerialTimestampCouple struct {
	Serial    uint64
	Timestamp time.Time
}

// AnchorSeal is an anchoring event seal: an identifier, a serial number,
// and a digest (spec.md's "anchoring event seals").
type AnchorSeal struct {
	Identifier primitive.Primitive
	Serial     uint64
	Digest     primitive.Primitive
}

// TransIndexedSigGroup is a transferable receipt quadruple: an
// identifier, serial number and digest of the anchoring event, followed
// by the nested controller indexed-signature group over it.
type TransIndexedSigGroup struct {
	Identifier primitive.Primitive
	Serial     uint64
	Digest     primitive.Primitive
	Sigs       []IndexedSigEntry
}

// TransLastIdxSigGroup is the abbreviated form of TransIndexedSigGroup
// that anchors against the identifier's last establishment event instead
// of a specific serial/digest pair.
type TransLastIdxSigGroup struct {
	Identifier primitive.Primitive
	Sigs       []IndexedSigEntry
}

// PathedMaterial is the pathed-material quadruplet: a MaterialPath
// followed by zero or more nested groups (spec.md's "-L"/"-P" shape).
type PathedMaterial struct {
	Path   variable.MaterialPath
	Groups []Group
}

// Group is a decoded count-code group (spec.md §4.5): exactly one of the
// fields relevant to Shape is populated.
type Group struct {
	Shape GroupShape
	Code  string

	IndexedSigs    []IndexedSigEntry
	KeySigCouples  []KeySigCouple
	SerialDigest   []SerialDigestCouple
	SerialStamp    []SerialTimestampCouple
	TransSigGroups []TransIndexedSigGroup
	TransLastSigs  []TransLastIdxSigGroup
	AnchorSeals    []AnchorSeal
	Frames         []Group
	Pathed         *PathedMaterial
	TSPValues      []Value
}
