package stream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cesr/b64"
	"github.com/arloliu/cesr/codes"
	"github.com/arloliu/cesr/errs"
	"github.com/arloliu/cesr/group"
	"github.com/arloliu/cesr/primitive"
	"github.com/arloliu/cesr/value"
	"github.com/arloliu/cesr/variable"
)

func TestParseValue_Primitive(t *testing.T) {
	code, _ := codes.LookupSelfAddressing("E")
	text := code.Text + b64.EncodeAligned(code.CodeSize(), make([]byte, 32))

	v, rest, err := ParseValue(text + "tail")
	require.NoError(t, err)
	require.Equal(t, "tail", rest)
	require.Equal(t, value.KindPrimitive, v.Kind)
	require.Equal(t, code.Text, v.Prim.Code.Text)
}

func TestParseValue_Tag(t *testing.T) {
	text, err := codes.EncodeTag("abc")
	require.NoError(t, err)

	v, rest, err := ParseValue(text)
	require.NoError(t, err)
	require.Equal(t, "", rest)
	require.Equal(t, value.KindTag, v.Kind)
	require.Equal(t, "abc", v.Tag)
}

func TestParseValue_VariableLength(t *testing.T) {
	raw := []byte("hello")
	text, err := variable.Encode(variable.FromBytes(variable.Base64String, raw))
	require.NoError(t, err)

	v, rest, err := ParseValue(text + "tail")
	require.NoError(t, err)
	require.Equal(t, "tail", rest)
	require.Equal(t, value.KindVariableLengthRaw, v.Kind)
	require.Equal(t, raw, v.VarLen.Value)
}

func TestParseValue_JSONPayload(t *testing.T) {
	v, rest, err := ParseValue(`{"a":1}tail`)
	require.NoError(t, err)
	require.Equal(t, "tail", rest)
	require.Equal(t, value.KindPayload, v.Kind)
	require.Equal(t, `{"a":1}`, string(v.Payload.Bytes))
}

func TestParseValue_Genus(t *testing.T) {
	text := "-_" + "AAA" + b64.NumToB64(1, 1) + b64.NumToB64(2, 2)

	v, rest, err := ParseValue(text + "tail")
	require.NoError(t, err)
	require.Equal(t, "tail", rest)
	require.Equal(t, value.KindVersionGenus, v.Kind)
	require.Equal(t, "AAA", v.Genus.Genus)
	require.Equal(t, byte(1), v.Genus.Major)
	require.Equal(t, byte(2), v.Genus.Minor)
}

func TestParseValue_UniversalGroup(t *testing.T) {
	body := codes.PackSerialNumber(42)
	quadlets := len(body) / 4
	text := "-A" + b64.NumToB64(uint64(quadlets), 2) + body

	v, rest, err := ParseValue(text + "tail")
	require.NoError(t, err)
	require.Equal(t, "tail", rest)
	require.Equal(t, value.KindUniversalGroup, v.Kind)
	require.Equal(t, "A", v.Universal.Code)
	require.Len(t, v.Universal.Children, 1)
}

func TestParseValue_ShapeSpecificGroup(t *testing.T) {
	sig := make([]byte, 64)
	sigText, err := codes.EncodeIndexedSignature(codes.BothSame, sig, 0)
	require.NoError(t, err)
	text := "-K" + b64.NumToB64(1, 2) + sigText

	v, rest, err := ParseValue(text + "tail")
	require.NoError(t, err)
	require.Equal(t, "tail", rest)
	require.Equal(t, value.KindSpecificGroup, v.Kind)
	require.Equal(t, value.ShapeIndexedControllerSigs, v.Specific.Shape)
}

func TestParseValue_UnrecognizedByte(t *testing.T) {
	_, _, err := ParseValue("\x01\x02")
	require.True(t, errors.Is(err, errs.ErrParse))
}

// TestParseAll_HelloCESRRoundTrip pins the "Hello CESR round-trip"
// scenario: a JSON payload followed by a non-transferable-receipt-couple
// group carrying one Ed25519 key and one Ed25519-Sha512 signature parses
// to one payload and one group with one couple, and re-encoding the
// group alongside the untouched payload bytes reproduces the original
// stream exactly.
func TestParseAll_HelloCESRRoundTrip(t *testing.T) {
	payloadText := `{"name":"John","surname":"Doe"}`

	keyCode, ok := codes.LookupBasic("D")
	require.True(t, ok)
	keyRaw := make([]byte, 32)
	for i := range keyRaw {
		keyRaw[i] = byte(i)
	}

	sigCode, ok := codes.LookupSelfSigning("0B")
	require.True(t, ok)
	sigRaw := make([]byte, 64)
	for i := range sigRaw {
		sigRaw[i] = byte(i + 1)
	}

	g := value.Group{
		Shape: value.ShapeNonTransReceiptCouples,
		KeySigCouples: []value.KeySigCouple{
			{
				Key: primitive.Primitive{Code: keyCode, Raw: keyRaw},
				Sig: primitive.Primitive{Code: sigCode, Raw: sigRaw},
			},
		},
	}

	groupText, err := group.Encode(g, nil)
	require.NoError(t, err)

	stream := payloadText + groupText

	values, rest, err := ParseAll(stream)
	require.NoError(t, err)
	require.Equal(t, "", rest)
	require.Len(t, values, 2)

	require.Equal(t, value.KindPayload, values[0].Kind)
	require.Equal(t, payloadText, string(values[0].Payload.Bytes))

	require.Equal(t, value.KindSpecificGroup, values[1].Kind)
	require.Equal(t, value.ShapeNonTransReceiptCouples, values[1].Specific.Shape)
	require.Len(t, values[1].Specific.KeySigCouples, 1)
	require.Equal(t, g.KeySigCouples, values[1].Specific.KeySigCouples)

	reencoded, err := group.Encode(values[1].Specific, nil)
	require.NoError(t, err)
	require.Equal(t, stream, string(values[0].Payload.Bytes)+reencoded)
}

func TestParseValue_EmptyStream(t *testing.T) {
	_, _, err := ParseValue("")
	require.True(t, errors.Is(err, errs.ErrEmptyStream))
}

func TestParseAll_MultipleValues(t *testing.T) {
	code, _ := codes.LookupSelfAddressing("E")
	one := code.Text + b64.EncodeAligned(code.CodeSize(), make([]byte, 32))

	tagText, err := codes.EncodeTag("abc")
	require.NoError(t, err)

	values, rest, err := ParseAll(one + tagText)
	require.NoError(t, err)
	require.Equal(t, "", rest)
	require.Len(t, values, 2)
	require.Equal(t, value.KindPrimitive, values[0].Kind)
	require.Equal(t, value.KindTag, values[1].Kind)
}
