package primitive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cesr/codes"
	"github.com/arloliu/cesr/errs"
)

func TestEncodeDecode_Blake3Digest(t *testing.T) {
	code, ok := codes.LookupSelfAddressing("E")
	require.True(t, ok)

	digest := make([]byte, 32)
	for i := range digest {
		digest[i] = byte(i)
	}

	text := Encode(Primitive{Code: code, Raw: digest})
	require.Len(t, text, 44)

	p, rest, err := Decode(code, text+"trailing data")
	require.NoError(t, err)
	require.Equal(t, "trailing data", rest)
	require.Equal(t, digest, p.Raw)
}

func TestEncode_EmptyRawYieldsEmptyText(t *testing.T) {
	code, _ := codes.LookupSelfAddressing("E")
	require.Equal(t, "", Encode(Primitive{Code: code}))
}

func TestDecode_ShortInputIsIncomplete(t *testing.T) {
	code, _ := codes.LookupSelfAddressing("E")
	_, _, err := Decode(code, "E"+"short")
	require.True(t, errors.Is(err, errs.ErrIncomplete))
}

func TestDecode_WrongCodeIsUnknown(t *testing.T) {
	code, _ := codes.LookupSelfAddressing("E")
	_, _, err := Decode(code, "F"+string(make([]byte, 43)))
	require.True(t, errors.Is(err, errs.ErrUnknownCode))
}
