package classify

import (
	"testing"

	"github.com/keebtools/via2qmk/pkg/via"
)

func geo(label string, w, y float64) via.Key {
	return via.Key{Kind: via.KindGeometry, Label: label, Width: w, Y: y}
}

func gap(w, x, y float64) via.Key {
	return via.Key{Kind: via.KindGeometry, Width: w, X: x, Y: y, Blocker: true}
}

// oneKeyOnRow places a single geometry key at the given offset on the given
// row by padding with 1u keys first.
func oneKeyOnRow(row, offset, w float64) []via.Key {
	var keys []via.Key
	if row > 0 {
		keys = append(keys, geo("0,0", 1, 0))
	}
	first := geo("r,0", 1, row)
	if offset == 0 {
		first = geo("r,0", w, row)
		return append(keys, first)
	}
	keys = append(keys, first)
	for cursor := 1.0; cursor < offset; cursor++ {
		keys = append(keys, geo("r,n", 1, row))
	}
	return append(keys, geo("r,k", w, row))
}

func TestAnalyzeFeatureFlags(t *testing.T) {
	tests := []struct {
		name string
		keys []via.Key
		want func(Properties) bool
	}{
		{
			name: "split backspace at offset 13",
			keys: oneKeyOnRow(0, 13, 1),
			want: func(p Properties) bool { return p.SplitBackspace && !p.StandardBackspace },
		},
		{
			name: "split backspace at offset 14",
			keys: oneKeyOnRow(0, 14, 1),
			want: func(p Properties) bool { return p.SplitBackspace },
		},
		{
			name: "standard backspace",
			keys: oneKeyOnRow(0, 13, 2),
			want: func(p Properties) bool { return p.StandardBackspace && !p.SplitBackspace },
		},
		{
			name: "unrelated width on row 0 sets nothing",
			keys: oneKeyOnRow(0, 13, 1.5),
			want: func(p Properties) bool { return !p.SplitBackspace && !p.StandardBackspace },
		},
		{
			name: "ansi enter",
			keys: oneKeyOnRow(2, 13, 2),
			want: func(p Properties) bool { return p.ANSIEnter },
		},
		{
			name: "enter offset must be 13",
			keys: oneKeyOnRow(2, 12, 2),
			want: func(p Properties) bool { return !p.ANSIEnter },
		},
		{
			name: "split left shift",
			keys: oneKeyOnRow(3, 0, 1.25),
			want: func(p Properties) bool { return p.SplitLeftShift },
		},
		{
			name: "full left shift sets nothing",
			keys: oneKeyOnRow(3, 0, 2.25),
			want: func(p Properties) bool { return !p.SplitLeftShift },
		},
		{
			name: "split right shift 1.75u",
			keys: oneKeyOnRow(3, 13, 1.75),
			want: func(p Properties) bool { return p.SplitRightShift },
		},
		{
			name: "split right shift 1u",
			keys: oneKeyOnRow(3, 13, 1),
			want: func(p Properties) bool { return p.SplitRightShift },
		},
		{
			name: "2.75u right shift sets nothing",
			keys: oneKeyOnRow(3, 13, 2.75),
			want: func(p Properties) bool { return !p.SplitRightShift },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := Analyze(tt.keys)
			if !tt.want(props) {
				t.Errorf("Analyze() = %+v, flag check failed", props)
			}
		})
	}
}

func TestAnalyzeBareKeysSetNoFlags(t *testing.T) {
	// 62 bare matrix labels carry no geometry; none of the feature flags may
	// fire even though the cursor walks through every threshold offset.
	keys := make([]via.Key, 0, 62)
	for i := 0; i < 62; i++ {
		keys = append(keys, via.Labeled("0,0"))
	}

	props := Analyze(keys)
	if props.TotalKeys != 62 {
		t.Errorf("TotalKeys = %d, want 62", props.TotalKeys)
	}
	if props.SplitBackspace || props.SplitLeftShift || props.SplitRightShift ||
		props.StandardBackspace || props.ANSIEnter {
		t.Errorf("bare keys set feature flags: %+v", props)
	}
	if props.BottomRow.Shape() != "" {
		t.Errorf("BottomRow.Shape() = %q, want none", props.BottomRow.Shape())
	}
	if len(props.KeyWidths) != 62 {
		t.Errorf("len(KeyWidths) = %d, want 62", len(props.KeyWidths))
	}
}

func TestAnalyzeBottomRowBuckets(t *testing.T) {
	keys := []via.Key{
		geo("0,0", 1, 0),
		// bottom row: 1.25+1.25+1.25 left, two 1u in between, 6.25 space,
		// four 1.25 right
		geo("4,0", 1.25, 4),
		geo("4,1", 1.25, 4),
		geo("4,2", 1.25, 4),
		via.Labeled("4,3"),
		via.Labeled("4,4"),
		geo("4,5", 6.25, 4),
		geo("4,6", 1.25, 4),
		geo("4,7", 1.25, 4),
		geo("4,8", 1.25, 4),
		geo("4,9", 1.25, 4),
	}

	props := Analyze(keys)
	b := props.BottomRow
	if b.LeftMods != 3.75 {
		t.Errorf("LeftMods = %v, want 3.75", b.LeftMods)
	}
	if b.Space != 6.25 {
		t.Errorf("Space = %v, want 6.25", b.Space)
	}
	if b.RightMods != 5 {
		t.Errorf("RightMods = %v, want 5", b.RightMods)
	}
	if !b.StandardWK {
		t.Error("StandardWK = false, want true")
	}
}

func TestAnalyzeRecordsBlockers(t *testing.T) {
	keys := []via.Key{
		geo("0,0", 1, 0),
		gap(1, 1, 4),
		geo("4,0", 1, 4),
		gap(1, 14, 4),
	}

	props := Analyze(keys)
	if !props.BottomRow.HasBlockers {
		t.Error("HasBlockers = false, want true")
	}
	want := []Blocker{{X: 1, Y: 4}, {X: 14, Y: 4}}
	if len(props.Blockers) != len(want) {
		t.Fatalf("len(Blockers) = %d, want %d", len(props.Blockers), len(want))
	}
	for i, b := range want {
		if props.Blockers[i] != b {
			t.Errorf("Blockers[%d] = %+v, want %+v", i, props.Blockers[i], b)
		}
	}
}

func TestBottomRowShapeExclusive(t *testing.T) {
	// No input may set more than one shape flag.
	bags := []BottomRow{
		{LeftMods: 3.75, Space: 6.25, RightMods: 5},
		{LeftMods: 3, Space: 7, RightMods: 3},
		{LeftMods: 5, Space: 6, RightMods: 4, HasBlockers: true},
		{LeftMods: 3.75, Space: 6.25, RightMods: 5, HasBlockers: true},
		{LeftMods: 3, Space: 6, RightMods: 3, HasBlockers: true},
		{},
	}

	for i, b := range bags {
		b.classify()
		set := 0
		for _, f := range []bool{b.StandardWK, b.Tsangan, b.HHKB} {
			if f {
				set++
			}
		}
		if set > 1 {
			t.Errorf("bag %d: %d shape flags set, want at most 1 (%+v)", i, set, b)
		}
	}
}

func TestBottomRowShapes(t *testing.T) {
	tests := []struct {
		name string
		row  BottomRow
		want string
	}{
		{"standard wk", BottomRow{LeftMods: 3.75, Space: 6.25, RightMods: 5}, "standard"},
		{"tsangan", BottomRow{LeftMods: 3, Space: 7, RightMods: 3}, "tsangan"},
		{"hhkb", BottomRow{LeftMods: 5, Space: 6, RightMods: 4, HasBlockers: true}, "hhkb"},
		{"6u space without blockers is not hhkb", BottomRow{LeftMods: 5, Space: 6, RightMods: 4}, ""},
		{"tolerance absorbs drift", BottomRow{LeftMods: 3.7501, Space: 6.2499, RightMods: 5.05}, "standard"},
		{"nothing", BottomRow{LeftMods: 4, Space: 6.25, RightMods: 4}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.row
			b.classify()
			if got := b.Shape(); got != tt.want {
				t.Errorf("Shape() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnalyzeTotalKeysMatchesLabels(t *testing.T) {
	keys := []via.Key{
		via.Labeled("0,0"),
		geo("0,1", 1, 0),
		{Kind: via.KindGeometry, Width: 2}, // unlabeled geometry: no key
		gap(1.5, 3, 0),                     // blockers carry no label either
	}

	if props := Analyze(keys); props.TotalKeys != 2 {
		t.Errorf("TotalKeys = %d, want 2", props.TotalKeys)
	}
}
