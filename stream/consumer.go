package stream

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/cesr/errs"
	"github.com/arloliu/cesr/internal/pool"
	"github.com/arloliu/cesr/value"
)

// ParsedStream is the sequence of Values obtained by repeatedly parsing
// atoms from the head of a byte buffer (spec.md §3 "ParsedStream").
type ParsedStream struct {
	Values    []value.Value
	Remainder string
}

// Parse runs ParseAll over stream and wraps the result as a ParsedStream.
func Parse(stream string) (ParsedStream, error) {
	values, rest, err := ParseAll(stream)

	return ParsedStream{Values: values, Remainder: rest}, err
}

// Outcome classifies a parse failure for restartability (spec.md §4.7
// "Restartability"): Incomplete means the caller should buffer more
// input and retry from the same remainder; Error and Failure are not
// retryable against the same bytes.
type Outcome uint8

const (
	OutcomeComplete Outcome = iota
	OutcomeIncomplete
	OutcomeError
	OutcomeFailure
)

// Classify maps a parse error to its Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeComplete
	case errors.Is(err, errs.ErrIncomplete):
		return OutcomeIncomplete
	case errors.Is(err, errs.ErrFailure):
		return OutcomeFailure
	default:
		return OutcomeError
	}
}

// Consumer receives each Value a stream parse produces.
type Consumer interface {
	Consume(v value.Value)
}

// ConsumerFunc adapts a plain function to Consumer.
type ConsumerFunc func(value.Value)

// Consume calls f.
func (f ConsumerFunc) Consume(v value.Value) { f(v) }

// ParseAndSend drains stream, handing each parsed Value to consumer,
// until the buffer is empty or a parse error halts the loop (spec.md
// §4.7 "parse_and_send"). It returns the unconsumed remainder so a
// caller can buffer more input and retry when the error's Outcome is
// OutcomeIncomplete.
func ParseAndSend(stream string, consumer Consumer, log *logrus.Entry) (string, error) {
	remaining := stream
	for remaining != "" {
		v, rest, err := ParseValue(remaining)
		if err != nil {
			if Classify(err) == OutcomeIncomplete {
				log.WithField("remaining_bytes", len(remaining)).Debug("buffering incomplete value, awaiting more input")
			} else {
				log.WithError(err).Warn("parse_and_send halted on a parse error")
			}

			return remaining, err
		}

		consumer.Consume(v)
		remaining = rest
	}

	return remaining, nil
}

// RunConsumer launches the one goroutine this package starts: it reads
// newly-arrived chunks from chunks, appends them to an internal buffer,
// and drains complete Values through ParseAndSend into out as they
// become parseable. Every other operation in this package is synchronous
// and safe to call from the caller's own goroutine. The returned channel
// carries the first non-Incomplete error (or ctx's error), then closes.
func RunConsumer(ctx context.Context, chunks <-chan string, out chan<- value.Value, log *logrus.Entry) <-chan error {
	done := make(chan error, 1)

	go func() {
		defer close(done)
		defer close(out)

		buf := pool.GetAtomBuffer()
		defer pool.PutAtomBuffer(buf)

		consumer := ConsumerFunc(func(v value.Value) { out <- v })

		for {
			select {
			case <-ctx.Done():
				done <- ctx.Err()
				return
			case chunk, ok := <-chunks:
				if !ok {
					if buf.Len() > 0 {
						log.WithField("remaining_bytes", buf.Len()).Warn("consumer stream closed with unparsed trailing bytes")
					}

					return
				}

				buf.Grow(len(chunk))
				buf.MustWriteString(chunk)

				rest, err := ParseAndSend(string(buf.Bytes()), consumer, log)
				if err != nil && Classify(err) != OutcomeIncomplete {
					done <- err
					return
				}
				buf.Reset()
				buf.MustWriteString(rest)
			}
		}
	}()

	return done
}
