// Package payload implements the payload sniffer (spec.md §4.6, component
// C6): given a byte stream whose head byte identifies JSON, CBOR, or
// MessagePack framing, it delegates to that format's streaming decoder
// just far enough to find where the first complete value ends, and
// returns the consumed span alongside the stream tail. It never
// interprets the payload's fields.
package payload
