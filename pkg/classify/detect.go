package classify

import "github.com/keebtools/via2qmk/pkg/via"

// Layout is a canonical QMK layout identifier.
type Layout string

// The closed set of identifiers the classifier can produce.
const (
	Layout60ANSI            Layout = "LAYOUT_60_ansi"
	Layout60ANSISplitBS     Layout = "LAYOUT_60_ansi_split_bs"
	Layout60ANSISplitRShift Layout = "LAYOUT_60_ansi_split_rshift"
	Layout60ANSISplitBoth   Layout = "LAYOUT_60_ansi_split_bs_rshift"
	Layout60ISO             Layout = "LAYOUT_60_iso"
	Layout60ISOSplitBS      Layout = "LAYOUT_60_iso_split_bs"
	Layout60HHKB            Layout = "LAYOUT_60_hhkb"
	Layout60Tsangan         Layout = "LAYOUT_60_tsangan"
	Layout60WKL             Layout = "LAYOUT_60_wkl"
	LayoutFallback          Layout = "LAYOUT"
)

// All returns every identifier the classifier can produce, fallback last.
func All() []Layout {
	return []Layout{
		Layout60ANSI,
		Layout60ANSISplitBS,
		Layout60ANSISplitRShift,
		Layout60ANSISplitBoth,
		Layout60ISO,
		Layout60ISOSplitBS,
		Layout60HHKB,
		Layout60Tsangan,
		Layout60WKL,
		LayoutFallback,
	}
}

// Detect applies the decision procedure to an analyzed property bag.
// Rules are tried in strict priority order; the first match wins. Detect is
// total: a bag matching no rule yields [LayoutFallback].
func Detect(props Properties) Layout {
	// Full-size backspace with a split right shift and a standard winkey
	// bottom row (Nuphy Air 60 v2 and similar).
	if props.TotalKeys == 62 &&
		props.StandardBackspace &&
		props.ANSIEnter &&
		props.SplitRightShift &&
		!props.SplitBackspace &&
		!props.SplitLeftShift &&
		props.BottomRow.StandardWK {
		return Layout60ANSISplitRShift
	}

	if props.TotalKeys == 60 &&
		props.SplitBackspace &&
		props.BottomRow.HHKB &&
		props.SplitRightShift {
		return Layout60HHKB
	}

	// Winkeyless boards expose themselves through bottom-row blockers where
	// the GUI keys would sit.
	if props.TotalKeys == 61 && props.BottomRow.HasBlockers {
		for _, b := range props.Blockers {
			if b.Y == 4 && (b.X == 1 || b.X == 14) {
				return Layout60WKL
			}
		}
	}

	if props.TotalKeys == 61 && props.BottomRow.Tsangan {
		return Layout60Tsangan
	}

	if props.SplitLeftShift {
		if props.SplitBackspace {
			return Layout60ISOSplitBS
		}
		return Layout60ISO
	}

	if props.SplitBackspace && props.SplitRightShift {
		return Layout60ANSISplitBoth
	}
	if props.SplitBackspace {
		return Layout60ANSISplitBS
	}
	if props.SplitRightShift {
		return Layout60ANSISplitRShift
	}
	if props.TotalKeys == 61 {
		return Layout60ANSI
	}

	return LayoutFallback
}

// DetectKeys analyzes and classifies a keymap in one step.
func DetectKeys(keys []via.Key) Layout {
	return Detect(Analyze(keys))
}
