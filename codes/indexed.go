package codes

// IndexedShape distinguishes the five indexed-signature shapes spec.md §3
// names: a shared Ed25519Sha512 64-byte signature carries one or two
// small or big indices, embedded as a soft-size counter following the
// hard code.
type IndexedShape uint8

const (
	BothSame IndexedShape = iota
	CurrentOnly
	Dual
	BigCurrentOnly
	BigDual
)

// indexedEntry pairs a Code with the shape it encodes and how many index
// counters its soft part holds (1 or 2) and their individual width.
type indexedEntry struct {
	Code
	Shape      IndexedShape
	IndexWidth int // width in base64 chars of a single embedded index
	NumIndices int
}

// Indexed enumerates the indexed-signature codes. A 64-byte signature
// needs code_size%4==2 to land on a quadlet boundary, so every shape's
// hard+soft width is chosen to satisfy
// that regardless of how many index counters it packs in.
//
// "A" deliberately collides with Seed's SeedEd25519 code: spec.md §4.2
// documents this as the canonical ambiguous-dispatch example, resolved by
// trying Seed first in generic dispatch and reached directly otherwise.
var Indexed = []indexedEntry{
	{Code: Code{Family: FamilyIndexedSig, Name: "BothSame", Text: "A", SoftSize: 1, ValueSize: 86}, Shape: BothSame, IndexWidth: 1, NumIndices: 1},
	{Code: Code{Family: FamilyIndexedSig, Name: "CurrentOnly", Text: "B", SoftSize: 1, ValueSize: 86}, Shape: CurrentOnly, IndexWidth: 1, NumIndices: 1},
	{Code: Code{Family: FamilyIndexedSig, Name: "Dual", Text: "DA", SoftSize: 4, ValueSize: 86}, Shape: Dual, IndexWidth: 2, NumIndices: 2},
	{Code: Code{Family: FamilyIndexedSig, Name: "BigCurrentOnly", Text: "2A", SoftSize: 4, ValueSize: 86}, Shape: BigCurrentOnly, IndexWidth: 4, NumIndices: 1},
	{Code: Code{Family: FamilyIndexedSig, Name: "BigDual", Text: "3A", SoftSize: 8, ValueSize: 86}, Shape: BigDual, IndexWidth: 4, NumIndices: 2},
}

var indexedByText = func() map[string]indexedEntry {
	m := make(map[string]indexedEntry, len(Indexed))
	for _, e := range Indexed {
		m[e.Text] = e
	}

	return m
}()

// LookupIndexed resolves an indexed-signature code by its literal text.
func LookupIndexed(text string) (indexedEntry, bool) {
	e, ok := indexedByText[text]
	return e, ok
}
