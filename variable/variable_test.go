package variable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cesr/errs"
)

func TestEncodeDecode_ShortForm_RoundTrip(t *testing.T) {
	raw := []byte("hello cesr")
	v := FromBytes(Base64String, raw)

	text, err := Encode(v)
	require.NoError(t, err)
	require.Equal(t, byte('4')+byte(v.Lead), text[0])

	decoded, rest, err := Decode(text + "tail")
	require.NoError(t, err)
	require.Equal(t, "tail", rest)
	require.Equal(t, Base64String, decoded.Type)
	require.Equal(t, raw, decoded.Value)
}

func TestEncodeDecode_HPKETypes_RoundTrip(t *testing.T) {
	for _, typ := range []InnerType{HPKEBase, HPKEAuth} {
		raw := []byte{1, 2, 3, 4, 5}
		v := FromBytes(typ, raw)

		text, err := Encode(v)
		require.NoError(t, err)

		decoded, rest, err := Decode(text)
		require.NoError(t, err)
		require.Equal(t, "", rest)
		require.Equal(t, typ, decoded.Type)
		require.Equal(t, raw, decoded.Value)
	}
}

func TestEncodeDecode_LongForm_RoundTrip(t *testing.T) {
	raw := make([]byte, 3*(maxShortQuadlets+1))
	for i := range raw {
		raw[i] = byte(i)
	}
	v := FromBytes(Base64String, raw)

	text, err := Encode(v)
	require.NoError(t, err)
	require.Contains(t, "789", string(text[0]))

	decoded, rest, err := Decode(text)
	require.NoError(t, err)
	require.Equal(t, "", rest)
	require.Equal(t, raw, decoded.Value)
}

func TestDecode_EmptyStream(t *testing.T) {
	_, _, err := Decode("")
	require.True(t, errors.Is(err, errs.ErrEmptyStream))
}

func TestDecode_UnknownHead(t *testing.T) {
	_, _, err := Decode("!AAA00")
	require.True(t, errors.Is(err, errs.ErrUnknownCode))
}

func TestDecode_TruncatedHeader(t *testing.T) {
	_, _, err := Decode("4A")
	require.True(t, errors.Is(err, errs.ErrIncomplete))
}

func TestLeadForByteCount(t *testing.T) {
	require.Equal(t, 0, leadForByteCount(3))
	require.Equal(t, 2, leadForByteCount(1))
	require.Equal(t, 1, leadForByteCount(2))
}
