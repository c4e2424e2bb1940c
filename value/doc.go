// Package value defines the decoded atom: the tagged sum spec.md §3 calls
// Value (a Payload, a Primitive, a Tag, a VersionGenus, a UniversalGroup,
// a SpecificGroup, or a VariableLengthRaw), plus the typed shapes a
// SpecificGroup can take. The package holds data only; group assembles
// and parses these shapes, stream dispatches parse_value across them.
package value
