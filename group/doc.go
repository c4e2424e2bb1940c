// Package group implements the count-code group codec (spec.md §4.5,
// component C5): a count code `-X NN` introducing either N typed
// children (a counted group) or a quadlet-length body further Values or
// groups parse from (a frame, pathed-material, or TSP-payload group).
//
// spec.md §4.5 documents two overlapping letter layouts for count-code
// shapes (e.g. "-A/-K" for one shape, while §4.7 separately reserves
// "-A"/"-B"/"-C" for override-allowed universal groups). This package
// resolves the collision by assigning every shape-specific group a
// letter outside A/B/C and outside the colliding "-L" (claimed by both
// an indexed-signature alternate and the pathed-material alternate in
// the source table); see DESIGN.md for the full letter table and the
// reasoning.
package group
