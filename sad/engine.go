package sad

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arloliu/cesr/errs"
	"github.com/arloliu/cesr/hashing"
	"github.com/arloliu/cesr/primitive"
)

// Compute derives rec's digest under algo and writes it into every
// field SaidFields names (spec.md §4.9's procedure, unversioned case).
// It returns the record's final canonical JSON bytes. rec's said fields
// are mutated in place: they hold the placeholder only during the brief
// window derivation is in progress, per spec.md's Lifecycle note.
func Compute(rec Record, algo hashing.Algorithm) ([]byte, error) {
	code, err := algo.Code()
	if err != nil {
		return nil, err
	}

	fields := rec.SaidFields()
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: record has no said fields", errs.ErrSerialization)
	}

	originals := snapshot(fields)
	placeholder := strings.Repeat("#", code.FullSize())
	setAll(fields, placeholder)

	data, err := json.Marshal(rec)
	if err != nil {
		restore(fields, originals)
		return nil, fmt.Errorf("%w: %s", errs.ErrSerialization, err)
	}

	digest, err := hashing.Derive(algo, data, nil)
	if err != nil {
		restore(fields, originals)
		return nil, err
	}

	setAll(fields, primitive.Encode(digest))

	final, err := json.Marshal(rec)
	if err != nil {
		restore(fields, originals)
		return nil, fmt.Errorf("%w: %s", errs.ErrSerialization, err)
	}

	return final, nil
}

// ComputeVersioned is Compute's versioned counterpart: it additionally
// backfills rec's version-string field's size subfield before hashing
// (spec.md §4.9's versioned procedure).
func ComputeVersioned(rec VersionedRecord, algo hashing.Algorithm) ([]byte, error) {
	code, err := algo.Code()
	if err != nil {
		return nil, err
	}

	fields := rec.SaidFields()
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: record has no said fields", errs.ErrSerialization)
	}

	vf := rec.VersionField()
	originalVersion := *vf
	originalSaids := snapshot(fields)

	placeholder := strings.Repeat("#", code.FullSize())
	setAll(fields, placeholder)

	info := rec.VersionInfo()
	zeroVer, err := BuildVersionString(info, 0)
	if err != nil {
		*vf = originalVersion
		restore(fields, originalSaids)
		return nil, err
	}
	*vf = zeroVer

	sized, err := json.Marshal(rec)
	if err != nil {
		*vf = originalVersion
		restore(fields, originalSaids)
		return nil, fmt.Errorf("%w: %s", errs.ErrSerialization, err)
	}

	finalVer, err := BuildVersionString(info, len(sized))
	if err != nil {
		*vf = originalVersion
		restore(fields, originalSaids)
		return nil, err
	}
	*vf = finalVer

	data, err := json.Marshal(rec)
	if err != nil {
		*vf = originalVersion
		restore(fields, originalSaids)
		return nil, fmt.Errorf("%w: %s", errs.ErrSerialization, err)
	}

	digest, err := hashing.Derive(algo, data, nil)
	if err != nil {
		*vf = originalVersion
		restore(fields, originalSaids)
		return nil, err
	}

	setAll(fields, primitive.Encode(digest))

	final, err := json.Marshal(rec)
	if err != nil {
		*vf = originalVersion
		restore(fields, originalSaids)
		return nil, fmt.Errorf("%w: %s", errs.ErrSerialization, err)
	}

	return final, nil
}

// Verify recomputes rec's digest the same way Compute does and reports
// whether it matches the digest already present in rec's said fields,
// leaving rec unchanged either way. This is the "check a record exactly
// as received" counterpart to Compute: it trusts none of the digest text
// already in rec, only the rest of the record's content.
func Verify(rec Record, algo hashing.Algorithm) (bool, error) {
	fields := rec.SaidFields()
	if len(fields) == 0 {
		return false, fmt.Errorf("%w: record has no said fields", errs.ErrSerialization)
	}

	claimed := snapshot(fields)
	defer restore(fields, claimed)

	if _, err := Compute(rec, algo); err != nil {
		return false, err
	}

	recomputed := snapshot(fields)
	for i := range claimed {
		if claimed[i] != recomputed[i] {
			return false, nil
		}
	}

	return true, nil
}

// VerifyVersioned is Verify's versioned counterpart: it additionally
// checks the version string's size subfield against the record's actual
// serialized length.
func VerifyVersioned(rec VersionedRecord, algo hashing.Algorithm) (bool, error) {
	fields := rec.SaidFields()
	if len(fields) == 0 {
		return false, fmt.Errorf("%w: record has no said fields", errs.ErrSerialization)
	}

	vf := rec.VersionField()
	claimedVersion := *vf
	claimedSaids := snapshot(fields)
	defer func() {
		*vf = claimedVersion
		restore(fields, claimedSaids)
	}()

	if _, err := ComputeVersioned(rec, algo); err != nil {
		return false, err
	}

	if *vf != claimedVersion {
		return false, nil
	}

	recomputed := snapshot(fields)
	for i := range claimedSaids {
		if claimedSaids[i] != recomputed[i] {
			return false, nil
		}
	}

	return true, nil
}

func snapshot(fields []*string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = *f
	}

	return out
}

func setAll(fields []*string, v string) {
	for _, f := range fields {
		*f = v
	}
}

func restore(fields []*string, originals []string) {
	for i, f := range fields {
		*f = originals[i]
	}
}
