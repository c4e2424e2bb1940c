package codes

// SelfAddressing enumerates the nine digest derivation codes spec.md §3
// names for SAID/SAD use: five 32-byte digests sharing a 1-char hard code
// (lead=1, value_size=43, full_size=44) and four 64-byte digests sharing a
// 2-char hard code (lead=2, value_size=86, full_size=88). The two widths
// exist because a 32-byte digest needs exactly 1 lead byte and a 64-byte
// digest exactly 2 to land the encoded text on a quadlet boundary
// (spec.md §4.1).
var SelfAddressing = []Code{
	{Family: FamilySelfAddressing, Name: "Blake3_256", Text: "E", ValueSize: 43},
	{Family: FamilySelfAddressing, Name: "Blake2b_256", Text: "F", ValueSize: 43},
	{Family: FamilySelfAddressing, Name: "Blake2s_256", Text: "G", ValueSize: 43},
	{Family: FamilySelfAddressing, Name: "SHA3_256", Text: "H", ValueSize: 43},
	{Family: FamilySelfAddressing, Name: "SHA2_256", Text: "I", ValueSize: 43},
	{Family: FamilySelfAddressing, Name: "Blake3_512", Text: "0D", ValueSize: 86},
	{Family: FamilySelfAddressing, Name: "SHA3_512", Text: "0E", ValueSize: 86},
	{Family: FamilySelfAddressing, Name: "Blake2b_512", Text: "0F", ValueSize: 86},
	{Family: FamilySelfAddressing, Name: "SHA2_512", Text: "0G", ValueSize: 86},
}

var selfAddressingByText = indexByText(SelfAddressing)

// LookupSelfAddressing resolves a digest code by its literal text ("E",
// "0D", ...).
func LookupSelfAddressing(text string) (Code, bool) {
	c, ok := selfAddressingByText[text]
	return c, ok
}
