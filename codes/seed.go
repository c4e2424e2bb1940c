package codes

// Seed enumerates seed-material codes: a private seed from which a key
// pair is deterministically derived. SeedEd25519 shares the 1-char hard
// code "A" with IndexedSig's BothSame shape (spec.md §4.2's tie-break:
// generic dispatch tries Seed before IndexedSig, so standalone seed
// material always resolves correctly; a caller parsing inside a known
// indexed-signature context asks IndexedSig directly instead of going
// through generic dispatch).
var Seed = []Code{
	{Family: FamilySeed, Name: "SeedEd25519", Text: "A", ValueSize: 43},
	{Family: FamilySeed, Name: "SeedEd448", Text: "1AAF", ValueSize: 76},
	{Family: FamilySeed, Name: "SeedX25519", Text: "K", ValueSize: 43},
}

var seedByText = indexByText(Seed)

// LookupSeed resolves a seed code by its literal text.
func LookupSeed(text string) (Code, bool) {
	c, ok := seedByText[text]
	return c, ok
}
