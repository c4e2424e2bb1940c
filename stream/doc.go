// Package stream implements the top-level parser (spec.md §4.7, component
// C7): parse_value dispatches on a stream's leading byte across every
// other component (payload, groups, variable-length primitives, coded
// primitives), parse_all repeats it to exhaustion, and RunConsumer parses
// arriving chunks in a single background goroutine, the one sanctioned
// concurrency point in the whole parser.
package stream
