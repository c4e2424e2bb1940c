package codes

import (
	"fmt"

	"github.com/arloliu/cesr/errs"
	"github.com/arloliu/cesr/internal/hash"
)

// Find resolves text to its Code and Family, trying families in the fixed
// order spec.md §4.2 prescribes: Seed, IndexedSig, Basic, SelfAddressing,
// SelfSigning, Serial/Rand, Timestamp, Tag. The first family whose head
// characters match wins; Find never backtracks into a different family
// once a code has committed at least one character (a caller who already
// knows the expected family should call that family's Lookup directly
// instead of going through generic dispatch).
//
// Repeated lookups of the same head characters are cached by their
// xxhash-64 (internal/hash.ID): the cache never holds cryptographic
// material, only which family a given prefix belongs to.
func Find(text string) (Code, error) {
	if text == "" {
		return Code{}, errs.ErrEmptyCode
	}

	if fam, ok := familyCacheLookup(text); ok {
		return lookupInFamily(fam, text)
	}

	for _, fam := range dispatchOrder {
		if c, ok := lookupInFamily0(fam, text); ok {
			familyCacheStore(text, fam)
			return c, nil
		}
	}

	return Code{}, fmt.Errorf("%w: %q", errs.ErrUnknownCode, text)
}

var dispatchOrder = []Family{
	FamilySeed,
	FamilyIndexedSig,
	FamilyBasic,
	FamilySelfAddressing,
	FamilySelfSigning,
	FamilySerial,
	FamilyTimestamp,
	FamilyTag,
}

func lookupInFamily0(fam Family, text string) (Code, bool) {
	switch fam {
	case FamilySeed:
		return matchHead(text, seedByText)
	case FamilyIndexedSig:
		if e, ok := matchIndexedHead(text); ok {
			return e.Code, true
		}
		return Code{}, false
	case FamilyBasic:
		return matchHead(text, basicByText)
	case FamilySelfAddressing:
		return matchHead(text, selfAddressingByText)
	case FamilySelfSigning:
		return matchHead(text, selfSigningByText)
	case FamilySerial:
		if len(text) >= len(Serial.Text) && text[:len(Serial.Text)] == Serial.Text {
			return Serial, true
		}
		return Code{}, false
	case FamilyTimestamp:
		if len(text) >= len(Timestamp.Text) && text[:len(Timestamp.Text)] == Timestamp.Text {
			return Timestamp, true
		}
		return Code{}, false
	case FamilyTag:
		if len(text) >= 1 && (text[:1] == TagHardShort || text[:1] == TagHardLong) {
			if text[:1] == TagHardShort {
				return Tag3, true
			}
			return Tag7, true
		}
		return Code{}, false
	default:
		return Code{}, false
	}
}

func lookupInFamily(fam Family, text string) (Code, error) {
	if c, ok := lookupInFamily0(fam, text); ok {
		return c, nil
	}

	return Code{}, fmt.Errorf("%w: %q", errs.ErrUnknownCode, text)
}

func matchHead(text string, byText map[string]Code) (Code, bool) {
	for _, c := range byText {
		if len(text) >= len(c.Text) && text[:len(c.Text)] == c.Text {
			return c, true
		}
	}

	return Code{}, false
}

func matchIndexedHead(text string) (indexedEntry, bool) {
	for _, e := range Indexed {
		if len(text) >= len(e.Text) && text[:len(e.Text)] == e.Text {
			return e, true
		}
	}

	return indexedEntry{}, false
}

// familyCache maps the xxhash-64 of a code's head characters to the
// family that resolved it, amortizing the linear family/table scan above
// for streams that repeat the same small set of codes many times (a
// typical KEL/TEL event stream reuses a handful of key and digest types
// throughout).
var familyCache = map[uint64]Family{}

func cacheKey(text string) uint64 {
	n := len(text)
	if n > 8 {
		n = 8
	}

	return hash.ID(text[:n])
}

func familyCacheLookup(text string) (Family, bool) {
	fam, ok := familyCache[cacheKey(text)]
	return fam, ok
}

func familyCacheStore(text string, fam Family) {
	familyCache[cacheKey(text)] = fam
}
