package codes

// Basic enumerates public-key derivation codes: Ed25519, X25519, Ed448,
// X448 and secp256k1, each in a transferable and (where meaningful)
// non-transferable variant (spec.md §3 "Basic").
//
// Key byte widths are not all multiples of 3, so not every key type can
// share the same hard_size: a 32-byte key (Ed25519, X25519) needs lead=1
// (a 1-char hard code) to land on a quadlet boundary, a 33-byte key
// (secp256k1) needs lead=0 (a 4-char "1xxx" code), and a 57-byte key
// (Ed448) also needs lead=0. X448's 56-byte key needs lead=1 like the
// 32-byte keys.
var Basic = []Code{
	{Family: FamilyBasic, Name: "Ed25519", Text: "D", ValueSize: 43},
	{Family: FamilyBasic, Name: "Ed25519N", Text: "B", ValueSize: 43},
	{Family: FamilyBasic, Name: "X25519", Text: "C", ValueSize: 43},
	{Family: FamilyBasic, Name: "X448", Text: "J", ValueSize: 75},
	{Family: FamilyBasic, Name: "ECDSA_secp256k1", Text: "1AAA", ValueSize: 44},
	{Family: FamilyBasic, Name: "ECDSA_secp256k1N", Text: "1AAB", ValueSize: 44},
	{Family: FamilyBasic, Name: "Ed448", Text: "1AAD", ValueSize: 76},
	{Family: FamilyBasic, Name: "Ed448N", Text: "1AAH", ValueSize: 76},
}

var basicByText = indexByText(Basic)

// LookupBasic resolves a basic public-key code by its literal text.
func LookupBasic(text string) (Code, bool) {
	c, ok := basicByText[text]
	return c, ok
}
