// Package render holds visual output for decoded keyboard geometry.
//
// The [board] subpackage draws a keymap's physical layout as an SVG: one
// rounded rect per key at its extracted placement, blockers dashed, with
// optional matrix-position labels. It exists so a user can check what the
// classifier saw when a detection looks wrong.
//
//	svg := board.RenderSVG(doc.Layouts.Keymap, board.WithLabels())
//	err := os.WriteFile("board.svg", svg, 0o644)
//
// [board]: https://pkg.go.dev/github.com/keebtools/via2qmk/pkg/render/board
package render
