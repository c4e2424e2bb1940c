package codes

import (
	"fmt"

	"github.com/arloliu/cesr/errs"
)

// Tag codes carry an opaque protocol-defined string verbatim, rather than
// a base64 re-encoding of raw bytes: spec.md §3 "Tag: 3- or 7-char opaque
// protocol tag." A single hard character selects the width; the value
// text is the tag's own characters, landing hard_size(1)+value_size(3 or
// 7) on quadlets of 4 and 8 respectively.
const (
	TagHardShort = "X"
	TagHardLong  = "Y"
)

var (
	Tag3 = Code{Family: FamilyTag, Name: "Tag3", Text: TagHardShort, ValueSize: 3}
	Tag7 = Code{Family: FamilyTag, Name: "Tag7", Text: TagHardLong, ValueSize: 7}
)

// EncodeTag renders an opaque tag of length 3 or 7 as its canonical text.
func EncodeTag(tag string) (string, error) {
	switch len(tag) {
	case Tag3.ValueSize:
		return Tag3.Text + tag, nil
	case Tag7.ValueSize:
		return Tag7.Text + tag, nil
	default:
		return "", fmt.Errorf("%w: tag %q must be 3 or 7 characters", errs.ErrIncorrectLength, tag)
	}
}

// DecodeTag parses a "X..." or "Y..." tag text back to its opaque value.
func DecodeTag(text string) (string, error) {
	switch {
	case len(text) == Tag3.FullSize() && text[:1] == Tag3.Text:
		return text[1:], nil
	case len(text) == Tag7.FullSize() && text[:1] == Tag7.Text:
		return text[1:], nil
	default:
		return "", fmt.Errorf("%w: %q is not a recognized Tag code", errs.ErrUnknownCode, text)
	}
}
