package sad

// Record is implemented by any Go struct carrying one or more
// self-addressing ("said") fields that must all receive the same
// digest (spec.md §4.9's "multiple said fields... co-identify a
// record"). SaidFields returns direct pointers into the struct so this
// package can substitute the placeholder and, later, the real digest
// text without the caller hand-rolling reflection.
type Record interface {
	SaidFields() []*string
}

// VersionedRecord additionally carries a leading version-string field
// (spec.md's "PPPP<major><minor>FORMAT<size6>_") whose size subfield
// must be backfilled before the digest is computed.
type VersionedRecord interface {
	Record
	VersionField() *string
	VersionInfo() VersionInfo
}

// VersionInfo describes the fixed parts of a versioned record's header:
// everything except the size, which the engine computes.
type VersionInfo struct {
	Protocol string // exactly 4 ASCII characters, e.g. "KERI"
	Major    byte   // one hex digit, 0-15
	Minor    byte   // one hex digit, 0-15
	Format   FormatCode
}

// FormatCode is the FORMAT subfield of a version string.
type FormatCode uint8

const (
	FormatJSON FormatCode = iota
	FormatCBOR
	FormatMGPK
)

func (f FormatCode) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatCBOR:
		return "CBOR"
	case FormatMGPK:
		return "MGPK"
	default:
		return "----"
	}
}
