// Package hashing implements the uniform hash-derivation interface
// (spec.md §4.8, component C8): derive(bytes) -> (code, digest) over the
// nine digest algorithms codes.SelfAddressing enumerates, a 64 KiB
// chunked streaming variant, and binding verification for a
// self-addressing identifier against its seed bytes.
package hashing
