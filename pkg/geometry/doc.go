// Package geometry derives physical key placement from a VIA keymap.
//
// # Overview
//
// A VIA keymap encodes geometry implicitly: keys are listed left to right,
// each advancing a running x-cursor by its width, and a new row starts
// whenever a descriptor's y value strictly exceeds the row tracked so far.
// This package performs that single ordered scan and exposes its results in
// three shapes:
//
//   - [Placements]: every key paired with its row and pre-placement offset
//   - [Catalog]: per-row lists of {offset, width, blocker} records
//   - [MatrixPositions]: the ordered matrix labels (the canonical key count)
//
// The scan is pure and order-sensitive; it never reorders or sorts by y.
// Bare label descriptors inherit the current row, advance the cursor by one
// unit, and never reset it.
package geometry
