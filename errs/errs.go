// Package errs collects the sentinel errors shared across the cesr module.
//
// Callers compare with errors.Is and wrap with fmt.Errorf("...: %w", ...)
// to attach context.
package errs

import "errors"

var (
	// ErrUnknownCode means the text does not name any known derivation code.
	ErrUnknownCode = errors.New("cesr: unknown derivation code")

	// ErrEmptyCode means the prefix is shorter than the family's minimum code length.
	ErrEmptyCode = errors.New("cesr: empty or truncated code prefix")

	// ErrBase64Decode means an alphabet or length violation occurred in a body.
	ErrBase64Decode = errors.New("cesr: base64url decode error")

	// ErrIncorrectLength means a primitive's body is shorter than its declared value_size.
	ErrIncorrectLength = errors.New("cesr: incorrect primitive length")

	// ErrIncomplete means the parser ran out of input mid-atom; callers may buffer more and retry.
	ErrIncomplete = errors.New("cesr: incomplete stream, more input required")

	// ErrParse is a recoverable error at a shape-dispatch junction; another branch may still succeed.
	ErrParse = errors.New("cesr: parse error")

	// ErrFailure is a non-recoverable error: a shape that committed cannot be retried.
	ErrFailure = errors.New("cesr: unrecoverable parse failure")

	// ErrSerialization means the payload codec refused to encode the given value.
	ErrSerialization = errors.New("cesr: serialization error")

	// ErrDeserialize means the payload codec refused to decode the given bytes.
	ErrDeserialize = errors.New("cesr: deserialization error")

	// ErrEmptyStream means zero-length input was given where a value was expected.
	ErrEmptyStream = errors.New("cesr: empty stream")

	// ErrIncorrectDigest means SAID verification found a digest mismatch.
	ErrIncorrectDigest = errors.New("cesr: incorrect digest")

	// ErrVersionStringLength means the protocol prefix of a version string is not 4 characters.
	ErrVersionStringLength = errors.New("cesr: version string protocol length must be 4")

	// ErrUnrecognizedPayload means no payload format (JSON/CBOR/MGPK) matched the first byte.
	ErrUnrecognizedPayload = errors.New("cesr: unrecognized payload format")

	// ErrUnknownCountCode means a count code uses a letter not in the selected layout.
	ErrUnknownCountCode = errors.New("cesr: unknown count code letter")

	// ErrMaxDepthExceeded means recursive group nesting exceeded the bounded recursion depth.
	ErrMaxDepthExceeded = errors.New("cesr: maximum group nesting depth exceeded")
)
