package codes

// SelfSigning enumerates signature derivation codes: Ed25519Sha512,
// ECDSA-secp256k1-Sha256 and Ed448 (spec.md §3 "SelfSigning"). Ed25519 and
// secp256k1 signatures are 64 bytes (lead=2, value_size=86, matching the
// 512-bit digest codes' arithmetic); Ed448 signatures are 114 bytes
// (lead=0, value_size=152).
var SelfSigning = []Code{
	{Family: FamilySelfSigning, Name: "Ed25519Sha512", Text: "0B", ValueSize: 86},
	{Family: FamilySelfSigning, Name: "ECDSA_secp256k1_Sha256", Text: "0C", ValueSize: 86},
	{Family: FamilySelfSigning, Name: "Ed448Sig", Text: "1AAE", ValueSize: 152},
}

var selfSigningByText = indexByText(SelfSigning)

// LookupSelfSigning resolves a signature code by its literal text.
func LookupSelfSigning(text string) (Code, bool) {
	c, ok := selfSigningByText[text]
	return c, ok
}
