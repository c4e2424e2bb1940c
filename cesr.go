// Package cesr provides convenient top-level wrappers around the stream,
// sad, and hashing packages for the most common CESR/SAID operations.
//
// For advanced usage and fine-grained control (custom group shapes,
// streaming consumers, algorithm selection), use those packages directly.
//
// # Basic Usage
//
// Parsing a CESR stream into its sequence of Values:
//
//	import "github.com/arloliu/cesr"
//
//	values, remainder, err := cesr.Parse(wireText)
//
// Computing a SAID for a JSON record:
//
//	type Record struct {
//	    D string `json:"d"`
//	    A string `json:"a"`
//	}
//	func (r *Record) SaidFields() []*string { return []*string{&r.D} }
//
//	rec := &Record{A: "hello"}
//	data, err := cesr.Seal(rec)
package cesr

import (
	"github.com/arloliu/cesr/hashing"
	"github.com/arloliu/cesr/sad"
	"github.com/arloliu/cesr/stream"
	"github.com/arloliu/cesr/value"
)

// Parse splits text into its leading sequence of CESR Values, returning
// whatever trailing bytes didn't form a complete value.
func Parse(text string) ([]value.Value, string, error) {
	return stream.ParseAll(text)
}

// ParseOne parses a single CESR Value from the head of text.
func ParseOne(text string) (value.Value, string, error) {
	return stream.ParseValue(text)
}

// Seal computes rec's SAID (or SAIDs, for a VersionedRecord) under the
// default algorithm and returns rec's final canonical serialization.
// rec's said fields (and version field, for a VersionedRecord) are
// mutated in place.
func Seal(rec sad.Record, opts ...sad.Option) ([]byte, error) {
	s, err := sad.New(rec, opts...)
	if err != nil {
		return nil, err
	}

	return s.Seal()
}

// DefaultAlgorithm is the hash algorithm Seal uses when no
// sad.WithAlgorithm option overrides it.
const DefaultAlgorithm = hashing.Blake3_256
