package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/cesr/codes"
	"github.com/arloliu/cesr/errs"
	"github.com/arloliu/cesr/value"
)

func silentLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(discardWriter{})

	return logrus.NewEntry(l)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestClassify(t *testing.T) {
	require.Equal(t, OutcomeComplete, Classify(nil))
	require.Equal(t, OutcomeIncomplete, Classify(errs.ErrIncomplete))
	require.Equal(t, OutcomeFailure, Classify(errs.ErrFailure))
	require.Equal(t, OutcomeError, Classify(errs.ErrParse))
}

func TestParseAndSend_DrainsAllValues(t *testing.T) {
	tagText, err := codes.EncodeTag("abc")
	require.NoError(t, err)

	var got []value.Value
	consumer := ConsumerFunc(func(v value.Value) { got = append(got, v) })

	rest, err := ParseAndSend(tagText+tagText, consumer, silentLog())
	require.NoError(t, err)
	require.Equal(t, "", rest)
	require.Len(t, got, 2)
}

func TestParseAndSend_HaltsOnHardError(t *testing.T) {
	consumer := ConsumerFunc(func(value.Value) {})

	_, err := ParseAndSend("\x01\x02", consumer, silentLog())
	require.True(t, errors.Is(err, errs.ErrParse))
}

func TestRunConsumer_DeliversAcrossChunks(t *testing.T) {
	tagText, err := codes.EncodeTag("abc")
	require.NoError(t, err)

	chunks := make(chan string, 4)
	out := make(chan value.Value, 4)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	done := RunConsumer(ctx, chunks, out, silentLog())

	chunks <- tagText[:2]
	chunks <- tagText[2:]
	close(chunks)

	select {
	case v := <-out:
		require.Equal(t, value.KindTag, v.Kind)
		require.Equal(t, "abc", v.Tag)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for parsed value")
	}

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for consumer to finish")
	}
}
