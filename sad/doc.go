// Package sad implements the self-addressing data engine (spec.md §4.9,
// component C9): given a record whose digest-carrying fields are
// described by the Record interface, it substitutes a length-correct
// placeholder into each, serializes, hashes that byte string, then
// writes the resulting identifier's text back into every said field.
// Versioned records additionally carry a 17-char version-string header
// whose size subfield this package backfills before hashing.
package sad
