// Package board renders a keymap's physical geometry as SVG.
//
// The renderer draws one rounded rectangle per key at the offsets the
// geometry scan reports, so the preview shows exactly what the classifier
// sees: split keys, stepped rows, and blocker gaps (drawn dashed). It is a
// debugging aid for "why did my board classify as X", not a faithful render
// of keycap sculpts.
//
// Usage:
//
//	svg := board.RenderSVG(doc.Layouts.Keymap,
//	    board.WithScale(1.5),
//	    board.WithLabels(),
//	)
//	os.WriteFile("board.svg", svg, 0o644)
package board
