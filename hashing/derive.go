package hashing

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"github.com/arloliu/cesr/errs"
	"github.com/arloliu/cesr/primitive"
)

// chunkSize is the read size DeriveStream feeds the underlying hasher,
// matching spec.md §4.8's 64 KiB streaming chunk for Blake3.
const chunkSize = 64 * 1024

// newHasher builds the hash.Hash backing algo. key is only consulted for
// the two keyed algorithms (Blake2b_256, Blake2s_256); a nil key derives
// under an empty key, matching each library's unkeyed default.
func newHasher(algo Algorithm, key []byte) (hash.Hash, error) {
	switch algo {
	case Blake3_256:
		return blake3.New(32, nil), nil
	case Blake3_512:
		return blake3.New(64, nil), nil
	case Blake2b_256:
		return blake2b.New256(key)
	case Blake2b_512:
		return blake2b.New512(key)
	case Blake2s_256:
		return blake2s.New256(key)
	case SHA3_256:
		return sha3.New256(), nil
	case SHA3_512:
		return sha3.New512(), nil
	case SHA2_256:
		return sha256.New(), nil
	case SHA2_512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("%w: unrecognized hashing algorithm %d", errs.ErrUnknownCode, algo)
	}
}

// Derive computes the digest of data under algo and returns it as a
// Primitive ready for SAID/SAD use: the derivation code paired with the
// raw digest bytes (spec.md §4.8 "derive(bytes) -> (code, digest_bytes)").
// key is only meaningful for the keyed Blake2 variants.
func Derive(algo Algorithm, data []byte, key []byte) (primitive.Primitive, error) {
	code, err := algo.code()
	if err != nil {
		return primitive.Primitive{}, err
	}

	h, err := newHasher(algo, key)
	if err != nil {
		return primitive.Primitive{}, err
	}

	h.Write(data)

	return primitive.Primitive{Code: code, Raw: h.Sum(nil)}, nil
}

// DeriveStream computes the digest of r's full contents under algo,
// reading chunkSize bytes at a time rather than buffering the whole
// input (spec.md §4.8's streaming variant, generalized here from Blake3
// to every algorithm since the chunked read loop is algorithm-agnostic).
func DeriveStream(algo Algorithm, r io.Reader) (primitive.Primitive, error) {
	code, err := algo.code()
	if err != nil {
		return primitive.Primitive{}, err
	}

	h, err := newHasher(algo, nil)
	if err != nil {
		return primitive.Primitive{}, err
	}

	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return primitive.Primitive{}, fmt.Errorf("%w: %s", errs.ErrFailure, err)
		}
	}

	return primitive.Primitive{Code: code, Raw: h.Sum(nil)}, nil
}

// VerifyBinding recomputes the digest of seed under p's own algorithm and
// reports whether it equals p.Raw (spec.md §4.8
// "verify_binding(seed_bytes)").
func VerifyBinding(p primitive.Primitive, seed []byte) (bool, error) {
	algo, ok := algorithmForCode(p.Code.Text)
	if !ok {
		return false, fmt.Errorf("%w: %s is not a recognized hashing code", errs.ErrUnknownCode, p.Code)
	}

	recomputed, err := Derive(algo, seed, nil)
	if err != nil {
		return false, err
	}

	return len(p.Raw) == len(recomputed.Raw) && subtle.ConstantTimeCompare(p.Raw, recomputed.Raw) == 1, nil
}
