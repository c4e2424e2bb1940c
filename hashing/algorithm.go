package hashing

import (
	"fmt"

	"github.com/arloliu/cesr/codes"
	"github.com/arloliu/cesr/errs"
)

// Algorithm identifies one of the nine digest derivation algorithms
// spec.md §3 names, each backed by a codes.SelfAddressing entry.
type Algorithm uint8

const (
	Blake3_256 Algorithm = iota
	Blake2b_256
	Blake2s_256
	SHA3_256
	SHA2_256
	Blake3_512
	SHA3_512
	Blake2b_512
	SHA2_512
)

var algorithmCode = map[Algorithm]string{
	Blake3_256:  "E",
	Blake2b_256: "F",
	Blake2s_256: "G",
	SHA3_256:    "H",
	SHA2_256:    "I",
	Blake3_512:  "0D",
	SHA3_512:    "0E",
	Blake2b_512: "0F",
	SHA2_512:    "0G",
}

func (a Algorithm) String() string {
	switch a {
	case Blake3_256:
		return "Blake3_256"
	case Blake2b_256:
		return "Blake2b_256"
	case Blake2s_256:
		return "Blake2s_256"
	case SHA3_256:
		return "SHA3_256"
	case SHA2_256:
		return "SHA2_256"
	case Blake3_512:
		return "Blake3_512"
	case SHA3_512:
		return "SHA3_512"
	case Blake2b_512:
		return "Blake2b_512"
	case SHA2_512:
		return "SHA2_512"
	default:
		return "Unknown"
	}
}

// Code resolves the codes.Code an Algorithm derives digests under. The
// SAD engine needs this to compute a said field's placeholder width
// before any data has actually been hashed.
func (a Algorithm) Code() (codes.Code, error) {
	return a.code()
}

// code resolves the codes.Code an Algorithm derives digests under.
func (a Algorithm) code() (codes.Code, error) {
	text, ok := algorithmCode[a]
	if !ok {
		return codes.Code{}, fmt.Errorf("%w: unrecognized hashing algorithm %d", errs.ErrUnknownCode, a)
	}

	c, ok := codes.LookupSelfAddressing(text)
	if !ok {
		return codes.Code{}, fmt.Errorf("%w: no SelfAddressing entry for %s", errs.ErrUnknownCode, a)
	}

	return c, nil
}

// algorithmForCode resolves a codes.Code text back to its Algorithm,
// the direction VerifyBinding needs.
func algorithmForCode(text string) (Algorithm, bool) {
	for algo, t := range algorithmCode {
		if t == text {
			return algo, true
		}
	}

	return 0, false
}
