package sad

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/arloliu/cesr/compress"
	"github.com/arloliu/cesr/errs"
	"github.com/arloliu/cesr/format"
	"github.com/arloliu/cesr/hashing"
	"github.com/arloliu/cesr/internal/options"
)

// State tracks a SAD's lifecycle: a fresh record starts Unsealed, Seal
// computes and writes its digest(s) and moves it to Sealed, and Verify
// moves a Sealed record to Tampered the moment its current field values
// no longer match the digest it was sealed with.
type State uint8

const (
	StateUnsealed State = iota
	StateSealed
	StateTampered
)

func (s State) String() string {
	switch s {
	case StateUnsealed:
		return "Unsealed"
	case StateSealed:
		return "Sealed"
	case StateTampered:
		return "Tampered"
	default:
		return "Unknown"
	}
}

// SAD wraps a Record (or VersionedRecord) with the bookkeeping Seal and
// Verify need: which algorithm to derive under, and the lifecycle state.
type SAD struct {
	record       Record
	algo         hashing.Algorithm
	compression  format.CompressionType
	state        State
	sealedBytes  []byte
	sealedDigest []byte
}

// Option configures a SAD at construction time.
type Option = options.Option[*SAD]

// WithAlgorithm selects the hash algorithm Seal and Verify derive under.
// The default is hashing.Blake3_256.
func WithAlgorithm(algo hashing.Algorithm) Option {
	return options.NoError(func(s *SAD) { s.algo = algo })
}

// WithCompression selects the at-rest codec SealCompressed packs the
// sealed bytes with. The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.NoError(func(s *SAD) { s.compression = compression })
}

// New wraps record for sealing and verification.
func New(record Record, opts ...Option) (*SAD, error) {
	s := &SAD{record: record, algo: hashing.Blake3_256, compression: format.CompressionNone, state: StateUnsealed}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Seal computes record's digest(s), writes them back into its said
// fields, and transitions the SAD to StateSealed. Calling Seal again
// re-derives against the record's current contents.
func (s *SAD) Seal() ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if vr, ok := s.record.(VersionedRecord); ok {
		data, err = ComputeVersioned(vr, s.algo)
	} else {
		data, err = Compute(s.record, s.algo)
	}
	if err != nil {
		return nil, err
	}

	s.state = StateSealed
	s.sealedBytes = data
	s.sealedDigest = extractDigestText(s.record)

	return data, nil
}

// SealCompressed calls Seal and packs the result through the codec
// selected by WithCompression, for callers persisting sealed records to
// cold storage rather than emitting them onto the wire. With the default
// format.CompressionNone it is a plain passthrough.
func (s *SAD) SealCompressed() ([]byte, error) {
	data, err := s.Seal()
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(s.compression, "sad-seal")
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// OpenCompressed reverses SealCompressed: it decompresses packed with the
// codec selected by WithCompression and returns the sealed CESR/JSON
// bytes underneath, without touching the wrapped record.
func (s *SAD) OpenCompressed(packed []byte) ([]byte, error) {
	codec, err := compress.CreateCodec(s.compression, "sad-seal")
	if err != nil {
		return nil, err
	}

	return codec.Decompress(packed)
}

// Verify re-marshals record and compares the result byte for byte with
// the serialization Seal last produced; it does not recompute the digest.
// Any change to the record since that Seal, in a said field or any other,
// is a mismatch. A record that has never been sealed cannot be verified.
// A mismatch moves the SAD to StateTampered.
func (s *SAD) Verify() (bool, error) {
	if s.state == StateUnsealed {
		return false, fmt.Errorf("%w: cannot verify a record that was never sealed", errs.ErrFailure)
	}

	current, err := json.Marshal(s.record)
	if err != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrSerialization, err)
	}

	if !bytes.Equal(current, s.sealedBytes) {
		s.state = StateTampered
		return false, nil
	}

	return true, nil
}

// State reports the SAD's current lifecycle state.
func (s *SAD) State() State { return s.state }

func extractDigestText(rec Record) []byte {
	fields := rec.SaidFields()
	if len(fields) == 0 {
		return nil
	}

	return []byte(*fields[0])
}
