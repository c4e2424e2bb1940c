package codes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cesr/errs"
)

func TestFind_DispatchOrderResolvesAmbiguousA(t *testing.T) {
	// "A" is shared by SeedEd25519 and IndexedSig's BothSame; generic
	// dispatch must prefer Seed (spec.md §4.2).
	c, err := Find("A" + string(make([]byte, 43)))
	require.NoError(t, err)
	require.Equal(t, FamilySeed, c.Family)
}

func TestFind_ResolvesEachFamily(t *testing.T) {
	cases := []struct {
		text   string
		family Family
	}{
		{"E" + string(make([]byte, 43)), FamilySelfAddressing},
		{"0D" + string(make([]byte, 86)), FamilySelfAddressing},
		{"D" + string(make([]byte, 43)), FamilyBasic},
		{"0B" + string(make([]byte, 86)), FamilySelfSigning},
		{"0A" + string(make([]byte, 22)), FamilySerial},
		{Timestamp.Text, FamilyTimestamp},
		{TagHardShort + "abc", FamilyTag},
	}

	for _, tc := range cases {
		c, err := Find(tc.text)
		require.NoError(t, err, tc.text)
		require.Equal(t, tc.family, c.Family, tc.text)
	}
}

func TestFind_UnknownCode(t *testing.T) {
	_, err := Find("!!!!")
	require.True(t, errors.Is(err, errs.ErrUnknownCode))
}

func TestFind_EmptyCode(t *testing.T) {
	_, err := Find("")
	require.True(t, errors.Is(err, errs.ErrEmptyCode))
}
