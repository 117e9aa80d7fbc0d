package board

import (
	"bytes"
	"fmt"

	"github.com/keebtools/via2qmk/pkg/geometry"
	"github.com/keebtools/via2qmk/pkg/via"
)

const (
	unit   = 54.0 // pixels per key unit at scale 1
	margin = 8.0
	inset  = 2.0 // gap between a key's cell and its drawn cap
)

// Option configures SVG rendering via [RenderSVG].
type Option func(*renderer)

type renderer struct {
	scale  float64
	labels bool
}

// WithScale multiplies the output dimensions. Scale 1 draws keys at 54px per
// unit; values <= 0 are ignored.
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithLabels draws each key's matrix position centered on its cap.
func WithLabels() Option {
	return func(r *renderer) { r.labels = true }
}

// RenderSVG draws the keymap's physical geometry.
func RenderSVG(keys []via.Key, opts ...Option) []byte {
	r := renderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	placements := geometry.Placements(keys)
	u := unit * r.scale

	width, height := frame(placements, u)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.WriteString("  <style>.key{fill:#fdfdfd;stroke:#444;stroke-width:1}.blocker{fill:#ddd;stroke:#999;stroke-dasharray:3 2}.label{font:10px sans-serif;fill:#333;text-anchor:middle;dominant-baseline:middle}</style>\n")

	for _, p := range placements {
		renderKey(&buf, p, u, r.labels)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func frame(placements []geometry.Placement, u float64) (w, h float64) {
	var maxX, maxY float64
	for _, p := range placements {
		if right := p.Offset + p.Key.Width; right > maxX {
			maxX = right
		}
		if p.Row > maxY {
			maxY = p.Row
		}
	}
	return maxX*u + 2*margin, (maxY+1)*u + 2*margin
}

func renderKey(buf *bytes.Buffer, p geometry.Placement, u float64, labels bool) {
	x := margin + p.Offset*u + inset
	y := margin + p.Row*u + inset
	w := p.Key.Width*u - 2*inset
	h := u - 2*inset

	class := "key"
	if p.Key.Blocker {
		class = "blocker"
	}
	fmt.Fprintf(buf, `  <rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4"/>`+"\n",
		class, x, y, w, h)

	if labels && p.Key.Label != "" {
		fmt.Fprintf(buf, `  <text class="label" x="%.1f" y="%.1f">%s</text>`+"\n",
			x+w/2, y+h/2, p.Key.Label)
	}
}
