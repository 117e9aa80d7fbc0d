// Package classify infers the physical layout of a 60%-class keyboard from
// its key geometry.
//
// # Overview
//
// Classification runs in two passes:
//
//  1. [Analyze] aggregates per-key geometry into a [Properties] value: named
//     feature flags (split backspace, split shifts, ANSI enter) plus a
//     bottom-row summary (modifier width sums, spacebar width, blockers, and
//     one of three community-standard shapes).
//  2. [Detect] applies an ordered decision procedure over those features and
//     returns one identifier from a fixed, closed set.
//
// Detection is best-effort and total: absent or malformed geometry simply
// fails to set flags, and inputs matching no known pattern fall through to
// the generic [LayoutFallback]. There is no error path.
//
// Feature flags are driven only by geometry descriptors; bare matrix labels
// advance the cursor and key count but can never set a flag, so a keymap with
// no geometry information always classifies as [LayoutFallback].
//
// # Example
//
//	props := classify.Analyze(doc.Layouts.Keymap)
//	layout := classify.Detect(props)
//	fmt.Println(layout) // e.g. LAYOUT_60_tsangan
package classify
