package geometry

import "github.com/keebtools/via2qmk/pkg/via"

// Placement pairs a key with the row and x-offset the scan assigned to it.
// Offset is the cursor value before the key was placed, i.e. where the key
// starts; the cursor then advances by the key's width.
type Placement struct {
	Key    via.Key
	Row    float64 // tracked row value; starts at 0, only ever increases
	Offset float64
}

// KeyRecord describes one key's placement within a row of the catalog.
type KeyRecord struct {
	Offset  float64
	Width   float64
	Blocker bool
}

// Placements scans keys in input order and assigns each a row and offset.
//
// The row tracker starts at 0. A geometry descriptor whose y strictly exceeds
// the tracked row starts a new row: the tracker takes that y and the cursor
// resets to 0. Bare labels never change the row or reset the cursor. The
// input order is authoritative; y values are assumed non-decreasing as
// encountered.
func Placements(keys []via.Key) []Placement {
	out := make([]Placement, 0, len(keys))

	row := 0.0
	cursor := 0.0
	for _, k := range keys {
		if k.Kind == via.KindGeometry && k.Y > row {
			row = k.Y
			cursor = 0
		}
		out = append(out, Placement{Key: k, Row: row, Offset: cursor})
		cursor += k.Width
	}
	return out
}

// Catalog groups the placement records by row, in first-encountered order.
// The final row is flushed even when the scan ends mid-row.
func Catalog(keys []via.Key) [][]KeyRecord {
	var rows [][]KeyRecord
	var current []KeyRecord

	last := 0.0
	for i, p := range Placements(keys) {
		if i > 0 && p.Row != last {
			rows = append(rows, current)
			current = nil
		}
		last = p.Row
		current = append(current, KeyRecord{
			Offset:  p.Offset,
			Width:   p.Key.Width,
			Blocker: p.Key.Blocker,
		})
	}
	if current != nil {
		rows = append(rows, current)
	}
	return rows
}

// MatrixPositions extracts the ordered matrix-position labels.
// Descriptors without a label contribute nothing; order is preserved and
// duplicates are kept. The length of the result is the canonical key count.
func MatrixPositions(keys []via.Key) []string {
	var labels []string
	for _, k := range keys {
		if k.Label != "" {
			labels = append(labels, k.Label)
		}
	}
	return labels
}
