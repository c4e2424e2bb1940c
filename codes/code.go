package codes

import "fmt"

// Family identifies which derivation-code table a Code belongs to. It
// replaces the source's trait-based dispatch (spec.md §9) with a single
// tagged sum plus a function table per variant.
type Family uint8

const (
	// FamilyUnknown is the zero value; never a valid lookup result.
	FamilyUnknown Family = iota
	FamilyBasic
	FamilySelfAddressing
	FamilySelfSigning
	FamilySeed
	FamilySerial
	FamilyTimestamp
	FamilyIndexedSig
	FamilyTag
)

func (f Family) String() string {
	switch f {
	case FamilyBasic:
		return "Basic"
	case FamilySelfAddressing:
		return "SelfAddressing"
	case FamilySelfSigning:
		return "SelfSigning"
	case FamilySeed:
		return "Seed"
	case FamilySerial:
		return "Serial"
	case FamilyTimestamp:
		return "Timestamp"
	case FamilyIndexedSig:
		return "IndexedSig"
	case FamilyTag:
		return "Tag"
	default:
		return "Unknown"
	}
}

// Code is one entry of a derivation-code table: a fixed head text plus the
// three lengths (in base64 text characters) that determine its framing.
//
// HardSize is len(Text): the fixed, literal head. SoftSize is the width of
// an optional embedded counter following the hard part (zero for codes
// with no counter). ValueSize is the number of base64 characters making up
// the payload that follows the code.
type Code struct {
	Family    Family
	Name      string
	Text      string
	SoftSize  int
	ValueSize int
}

// HardSize is the character width of the code's fixed head.
func (c Code) HardSize() int { return len(c.Text) }

// CodeSize is hard_size + soft_size: the total width of the code prefix,
// counter included, before the value text begins.
func (c Code) CodeSize() int { return c.HardSize() + c.SoftSize }

// FullSize is code_size + value_size: the total atom width in base64
// characters. Every valid Code satisfies FullSize() % 4 == 0.
func (c Code) FullSize() int { return c.CodeSize() + c.ValueSize }

func (c Code) String() string {
	return fmt.Sprintf("%s(%s)", c.Family, c.Text)
}

// indexByText builds a lookup map keyed by each Code's literal text. Family
// tables are small and static, so a plain map built once at package init is
// preferable to the xxhash-backed cache Find uses across families.
func indexByText(table []Code) map[string]Code {
	m := make(map[string]Code, len(table))
	for _, c := range table {
		m[c.Text] = c
	}

	return m
}

// FindInTable resolves the Code in table whose Text is a prefix of stream.
// Callers that already know a child's family (a group's fixed shape, for
// instance) use this instead of the cross-family Find, since it never
// risks resolving to the wrong family.
func FindInTable(table []Code, stream string) (Code, bool) {
	for _, c := range table {
		if len(stream) >= len(c.Text) && stream[:len(c.Text)] == c.Text {
			return c, true
		}
	}

	return Code{}, false
}
