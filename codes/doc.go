// Package codes is the closed enumeration of CESR derivation codes: the
// ASCII tags that prefix every atom and fix its (hard_size, soft_size,
// value_size) and therefore its framing.
//
// Each family (Basic, SelfAddressing, SelfSigning, Seed, Serial, Timestamp,
// IndexedSig, Tag) lives in its own file and exposes a table of Code
// values plus a Lookup function. Generic dispatch (Find) tries the
// families in the fixed order spec.md §4.2 prescribes and never
// backtracks into a different family once a code's first character has
// committed it to one.
package codes
