package cesr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type demoRecord struct {
	D string `json:"d"`
	A string `json:"a"`
}

func (r *demoRecord) SaidFields() []*string { return []*string{&r.D} }

func TestSeal(t *testing.T) {
	rec := &demoRecord{A: "hello"}

	data, err := Seal(rec)
	require.NoError(t, err)
	require.NotEmpty(t, rec.D)
	require.Contains(t, string(data), rec.D)
}

func TestParse_EmptyStream(t *testing.T) {
	values, remainder, err := Parse("")
	require.NoError(t, err)
	require.Empty(t, values)
	require.Empty(t, remainder)
}

type helloWorldRecord struct {
	Text string `json:"text"`
	D    string `json:"d"`
}

func (r *helloWorldRecord) SaidFields() []*string { return []*string{&r.D} }

// TestSeal_HelloWorldSAID pins the "Hello-world SAID (Blake3-256, JSON,
// unversioned)" scenario against the package facade.
func TestSeal_HelloWorldSAID(t *testing.T) {
	rec := &helloWorldRecord{Text: "Hello world"}

	data, err := Seal(rec)
	require.NoError(t, err)
	require.Equal(t, "EF-7wdNGXqgO4aoVxRpdWELCx_MkMMjx7aKg9sqzjKwI", rec.D)
	require.Equal(t, `{"text":"Hello world","d":"EF-7wdNGXqgO4aoVxRpdWELCx_MkMMjx7aKg9sqzjKwI"}`, string(data))
}
