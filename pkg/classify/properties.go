package classify

import (
	"math"

	"github.com/keebtools/via2qmk/pkg/geometry"
	"github.com/keebtools/via2qmk/pkg/via"
)

// widthTolerance absorbs float drift when comparing key widths and width
// sums. Offsets accumulate in quarter-unit steps and are compared exactly.
const widthTolerance = 0.1

// Rows of a 60% board with a fixed meaning for classification.
const (
	rowBackspace = 0 // top row, backspace-class key at the far right
	rowEnter     = 2 // home row, enter on ANSI boards
	rowShift     = 3 // shift row
	rowBottom    = 4 // modifier row with the spacebar
)

// Bottom-row bucket boundaries: keys starting left of the spacebar zone sum
// into the left modifiers, keys inside it compete for the spacebar slot, and
// keys right of it sum into the right modifiers.
const (
	spaceZoneStart = 5.0
	spaceZoneEnd   = 9.0
)

// Blocker is a decorative gap encountered on the bottom row, recorded with
// the raw coordinates the descriptor carried.
type Blocker struct {
	X float64
	Y float64
}

// BottomRow summarizes the modifier row. At most one of the three shape
// flags is set; see [BottomRow.Shape].
type BottomRow struct {
	LeftMods    float64 // summed widths of keys starting left of the spacebar zone
	Space       float64 // widest key starting inside the spacebar zone
	RightMods   float64 // summed widths of keys starting right of the spacebar zone
	HasBlockers bool
	StandardWK  bool // 3.75 / 6.25 / 5: standard winkey bottom row
	Tsangan     bool // 3 / 7 / 3
	HHKB        bool // blockers plus a 6u spacebar
}

// Shape names the detected bottom-row shape, or "" when none matched.
func (b BottomRow) Shape() string {
	switch {
	case b.StandardWK:
		return "standard"
	case b.Tsangan:
		return "tsangan"
	case b.HHKB:
		return "hhkb"
	}
	return ""
}

// Properties is the feature bag one classification call derives from a
// keymap. It is rebuilt fresh per call and never mutated afterwards.
type Properties struct {
	TotalKeys         int
	KeyWidths         []float64
	SplitBackspace    bool
	SplitRightShift   bool
	SplitLeftShift    bool
	StandardBackspace bool
	ANSIEnter         bool
	BottomRow         BottomRow
	Blockers          []Blocker
	Rows              [][]geometry.KeyRecord
}

// Analyze scans the keymap once and aggregates its geometry into feature
// flags. Only geometry descriptors update flags; bare labels contribute key
// count, a unit width, and cursor movement.
func Analyze(keys []via.Key) Properties {
	props := Properties{
		TotalKeys: len(geometry.MatrixPositions(keys)),
		Rows:      geometry.Catalog(keys),
	}

	for _, p := range geometry.Placements(keys) {
		props.KeyWidths = append(props.KeyWidths, p.Key.Width)
		if p.Key.Kind != via.KindGeometry {
			continue
		}
		props.applyKey(p)
	}

	props.BottomRow.classify()
	return props
}

// applyKey updates the feature flags for a single placed geometry key.
func (props *Properties) applyKey(p geometry.Placement) {
	w := p.Key.Width

	switch p.Row {
	case rowBackspace:
		if (p.Offset == 13 || p.Offset == 14) && approx(w, 1) {
			props.SplitBackspace = true
		} else if p.Offset == 13 && approx(w, 2) {
			props.StandardBackspace = true
		}

	case rowEnter:
		if p.Offset == 13 && approx(w, 2) {
			props.ANSIEnter = true
		}

	case rowShift:
		if p.Offset == 0 && approx(w, 1.25) {
			props.SplitLeftShift = true
		} else if p.Offset == 13 && (approx(w, 1.75) || approx(w, 1)) {
			props.SplitRightShift = true
		}

	case rowBottom:
		if p.Key.Blocker {
			props.Blockers = append(props.Blockers, Blocker{X: p.Key.X, Y: p.Key.Y})
			props.BottomRow.HasBlockers = true
		}
		switch {
		case p.Offset < spaceZoneStart:
			props.BottomRow.LeftMods += w
		case p.Offset <= spaceZoneEnd:
			props.BottomRow.Space = math.Max(props.BottomRow.Space, w)
		default:
			props.BottomRow.RightMods += w
		}
	}
}

// classify sets at most one of the three shape flags, first match wins.
func (b *BottomRow) classify() {
	switch {
	case approx(b.LeftMods, 3.75) && approx(b.Space, 6.25) && approx(b.RightMods, 5):
		b.StandardWK = true
	case approx(b.LeftMods, 3) && approx(b.Space, 7) && approx(b.RightMods, 3):
		b.Tsangan = true
	case b.HasBlockers && approx(b.Space, 6):
		b.HHKB = true
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < widthTolerance
}
