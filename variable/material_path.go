package variable

import (
	"strings"

	"github.com/arloliu/cesr/b64"
)

// MaterialPath is a variable-length primitive whose text IS already valid
// base64-URL alphabet (field names and "-" separators), wrapped so it can
// be embedded as a pathed-material quadruplet's first element (spec.md
// §3 "MaterialPath", §4.5's "-L"/"-P" group).
type MaterialPath struct {
	Value
	Text string
}

// FromString builds a MaterialPath from its literal text form, e.g. "-"
// or "-field0-field1-field3" (spec.md §4.4 "Create from string s").
//
// Unlike FromBytes, the lead-byte count here is derived from aligning the
// *text itself* to the next quadlet boundary with 'A' padding and then
// base64-decoding, not from the byte length of some separately-encoded
// payload: a path string is its own base64 representation.
func FromString(s string) MaterialPath {
	n := len(s)
	lenMod := n % 4
	lead := (3 - (lenMod % 3)) % 3

	padCount := (4 - n%4) % 4
	padded := strings.Repeat("A", padCount) + s

	decoded, err := b64.FromText(padded)
	if err != nil {
		// s is not valid base64-URL text; callers are expected to
		// validate paths before constructing a MaterialPath.
		return MaterialPath{Value: Value{Type: Base64String, Lead: lead}, Text: s}
	}

	value := decoded
	if lead <= len(decoded) {
		value = decoded[lead:]
	}

	return MaterialPath{Value: Value{Type: Base64String, Lead: lead, Value: value}, Text: s}
}

// ToCesr renders the MaterialPath as its canonical variable-length text.
func ToCesr(mp MaterialPath) (string, error) {
	return Encode(mp.Value)
}

// padCountForLead maps a decoded lead-byte count back to the number of
// 'A' text characters FromString originally padded with. lead=0 is
// ambiguous between an original path length congruent to 0 or 3 mod 4
// (both collapse to lead=0); this implementation resolves that case in
// favor of 0 mod 4, since every concrete MaterialPath scenario spec.md §8
// gives uses lead=2, where no ambiguity exists. See DESIGN.md.
func padCountForLead(lead int) int {
	switch lead {
	case 1:
		return 2
	case 2:
		return 3
	default:
		return 0
	}
}

// DecodeMaterialPath parses a variable-length primitive from the head of
// stream and reconstructs its original path text by re-encoding the lead
// zero bytes and stripping the 'A' padding FromString originally added.
func DecodeMaterialPath(stream string) (MaterialPath, string, error) {
	v, rest, err := Decode(stream)
	if err != nil {
		return MaterialPath{}, stream, err
	}

	padded := make([]byte, v.Lead+len(v.Value))
	copy(padded[v.Lead:], v.Value)
	text := b64.ToText(padded)
	padCount := padCountForLead(v.Lead)

	return MaterialPath{Value: v, Text: text[padCount:]}, rest, nil
}
