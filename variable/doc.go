// Package variable implements the variable-length primitive codec
// (spec.md §4.4, component C4): base64-string and opaque-cipher payloads
// whose length is not fixed by a code table entry but carried alongside
// the atom as an explicit quadlet counter, plus MaterialPath, the
// variable-length wrapper used by pathed-material groups.
package variable
