package codes

import (
	"fmt"

	"github.com/arloliu/cesr/b64"
	"github.com/arloliu/cesr/errs"
)

// EncodeIndexedSignature renders sig (the 64-byte Ed25519Sha512 signature)
// under shape's code, packing indices (one or two, per shape.NumIndices)
// as fixed-width base64 counters before the signature's own value text.
func EncodeIndexedSignature(shape IndexedShape, sig []byte, indices ...uint64) (string, error) {
	entry, err := entryForShape(shape)
	if err != nil {
		return "", err
	}

	if len(indices) != entry.NumIndices {
		return "", fmt.Errorf("%w: %s needs %d indices, got %d", errs.ErrIncorrectLength, entry.Name, entry.NumIndices, len(indices))
	}

	counters := ""
	for _, idx := range indices {
		counters += b64.NumToB64(idx, entry.IndexWidth)
	}

	return entry.Text + counters + encodeAlignedValue(entry.Code, sig), nil
}

// DecodeIndexedSignature parses a full indexed-signature text back into
// its signature bytes and index values.
func DecodeIndexedSignature(text string) (IndexedShape, []byte, []uint64, error) {
	for _, entry := range Indexed {
		if len(text) < len(entry.Text) || text[:len(entry.Text)] != entry.Text {
			continue
		}
		if len(text) != entry.FullSize() {
			continue
		}

		rest := text[len(entry.Text):]
		indices := make([]uint64, 0, entry.NumIndices)
		for i := 0; i < entry.NumIndices; i++ {
			chunk := rest[i*entry.IndexWidth : (i+1)*entry.IndexWidth]
			n, err := b64.B64ToNum(chunk)
			if err != nil {
				return 0, nil, nil, err
			}
			indices = append(indices, n)
		}

		valueText := rest[entry.NumIndices*entry.IndexWidth:]
		sig, err := decodeAlignedValue(entry.Code, valueText)
		if err != nil {
			return 0, nil, nil, err
		}

		return entry.Shape, sig, indices, nil
	}

	return 0, nil, nil, fmt.Errorf("%w: %q is not a recognized IndexedSig code", errs.ErrUnknownCode, text)
}

// DecodeIndexedSignatureFromStream parses one indexed-signature atom from
// the head of stream, the way a group's child parser needs: unlike
// DecodeIndexedSignature, it tolerates trailing data and returns the
// unconsumed remainder.
func DecodeIndexedSignatureFromStream(stream string) (IndexedShape, []byte, []uint64, string, error) {
	for _, entry := range Indexed {
		if len(stream) < len(entry.Text) || stream[:len(entry.Text)] != entry.Text {
			continue
		}
		if len(stream) < entry.FullSize() {
			continue
		}

		shape, sig, indices, err := DecodeIndexedSignature(stream[:entry.FullSize()])
		if err != nil {
			return 0, nil, nil, stream, err
		}

		return shape, sig, indices, stream[entry.FullSize():], nil
	}

	return 0, nil, nil, stream, fmt.Errorf("%w: %q is not a recognized IndexedSig code", errs.ErrUnknownCode, stream)
}

func entryForShape(shape IndexedShape) (indexedEntry, error) {
	for _, e := range Indexed {
		if e.Shape == shape {
			return e, nil
		}
	}

	return indexedEntry{}, fmt.Errorf("%w: unrecognized indexed-signature shape %d", errs.ErrUnknownCode, shape)
}
