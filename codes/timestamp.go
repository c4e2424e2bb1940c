package codes

import (
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/cesr/errs"
)

// Timestamp is the ISO-8601 date-time code (spec.md §3 "Timestamp
// (1AAG)"). Unlike digest and key codes, a timestamp's value text is not
// a base64 re-encoding of raw bytes: the ISO-8601 string itself, after
// substituting the three characters base64-URL text cannot carry, *is*
// the value text. RFC3339Nano formatted with microsecond precision and a
// numeric UTC offset is always exactly 32 characters, so hard_size=4 +
// value_size=32 already lands on a quadlet boundary with no lead-byte
// adjustment needed.
var Timestamp = Code{Family: FamilyTimestamp, Name: "DateTime", Text: "1AAG", ValueSize: 32}

const timestampLayout = "2006-01-02T15:04:05.000000-07:00"

var timestampSubst = strings.NewReplacer(":", "c", ".", "d", "+", "p")
var timestampUnsubst = strings.NewReplacer("c", ":", "d", ".", "p", "+")

// EncodeTimestamp renders t as the canonical "1AAG..." text.
func EncodeTimestamp(t time.Time) string {
	s := t.UTC().Format(timestampLayout)

	return Timestamp.Text + timestampSubst.Replace(s)
}

// DecodeTimestamp parses a "1AAG..." text back into a time.Time.
func DecodeTimestamp(text string) (time.Time, error) {
	if len(text) != Timestamp.FullSize() || !strings.HasPrefix(text, Timestamp.Text) {
		return time.Time{}, fmt.Errorf("%w: %q is not a %d-char Timestamp code", errs.ErrIncorrectLength, text, Timestamp.FullSize())
	}

	s := timestampUnsubst.Replace(text[len(Timestamp.Text):])

	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q: %s", errs.ErrBase64Decode, text, err)
	}

	return t, nil
}
