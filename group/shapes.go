package group

import (
	"fmt"

	"github.com/arloliu/cesr/b64"
	"github.com/arloliu/cesr/errs"
	"github.com/arloliu/cesr/value"
)

// maxDepth bounds recursive group nesting (frame and pathed-material
// groups may contain further groups): spec.md §3 "Invariants" caps
// parser recursion so a malformed or adversarial stream cannot blow the
// call stack.
const maxDepth = 32

// Canonical letter assignment (see doc.go for why this departs from the
// spec's literal two-column table).
const (
	letterIndexedControllerSigs byte = 'K'
	letterIndexedWitnessSigs    byte = 'L'
	letterNonTransReceiptCouple byte = 'M'
	letterFirstSeenReplyCouple  byte = 'O'
	letterTransIndexedSigGroup  byte = 'F'
	letterSealSourceCouple      byte = 'G'
	letterTransLastIdxSigGroup  byte = 'H'
	letterAnchorSeal            byte = 'S'
	letterFrame                 byte = 'V'
	letterPathedMaterial        byte = 'P'
	letterTSPPayload            byte = 'Z'
)

var shapeByLetter = map[byte]value.GroupShape{
	letterIndexedControllerSigs: value.ShapeIndexedControllerSigs,
	letterIndexedWitnessSigs:    value.ShapeIndexedWitnessSigs,
	letterNonTransReceiptCouple: value.ShapeNonTransReceiptCouples,
	letterFirstSeenReplyCouple:  value.ShapeFirstSeenReplyCouples,
	letterTransIndexedSigGroup:  value.ShapeTransIndexedSigGroups,
	letterSealSourceCouple:      value.ShapeSealSourceCouples,
	letterTransLastIdxSigGroup:  value.ShapeTransLastIdxSigGroups,
	letterAnchorSeal:            value.ShapeAnchorSeals,
	letterFrame:                 value.ShapeFrame,
	letterPathedMaterial:        value.ShapePathedMaterial,
	letterTSPPayload:            value.ShapeTSPPayload,
}

var letterByShape = func() map[value.GroupShape]byte {
	m := make(map[value.GroupShape]byte, len(shapeByLetter))
	for l, s := range shapeByLetter {
		m[s] = l
	}

	return m
}()

// quadletShapes parses the "NN" field as a quadlet count of raw body
// text rather than a child element count.
var quadletShapes = map[value.GroupShape]bool{
	value.ShapeFrame:          true,
	value.ShapePathedMaterial: true,
	value.ShapeTSPPayload:     true,
}

func encodeHead(shape value.GroupShape, n int) (string, error) {
	letter, ok := letterByShape[shape]
	if !ok {
		return "", fmt.Errorf("%w: unrecognized group shape %s", errs.ErrUnknownCode, shape)
	}

	return "-" + string(letter) + b64.NumToB64(uint64(n), 2), nil
}

func decodeHead(stream string) (value.GroupShape, int, string, error) {
	if len(stream) < 4 || stream[0] != '-' {
		return 0, 0, stream, fmt.Errorf("%w: %q is not a count code", errs.ErrUnknownCode, stream)
	}

	shape, ok := shapeByLetter[stream[1]]
	if !ok {
		return 0, 0, stream, fmt.Errorf("%w: %q is not a recognized group letter", errs.ErrUnknownCode, stream[1:2])
	}

	n, err := b64.B64ToNum(stream[2:4])
	if err != nil {
		return 0, 0, stream, err
	}

	return shape, int(n), stream[4:], nil
}
