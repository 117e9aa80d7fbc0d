package qmk

import "strings"

// Fixed document fields, matching what QMK Configurator itself exports.
const (
	Version       = 1
	Notes         = "Generated by VIA to QMK converter"
	Documentation = "This file is a QMK Configurator export. You can import this at <https://config.qmk.fm>."
)

// DefaultKeycode is the placeholder keycode used for generated layers.
const DefaultKeycode = "KC_TRNS"

// Keymap is a QMK Configurator keymap document.
type Keymap struct {
	Version       int        `json:"version"`
	Notes         string     `json:"notes"`
	Documentation string     `json:"documentation"`
	Keyboard      string     `json:"keyboard"`
	Keymap        string     `json:"keymap"`
	Layout        string     `json:"layout"`
	Layers        [][]string `json:"layers"`
	Author        string     `json:"author"`
}

// New builds a keymap document for the named keyboard with a single layer.
// The keyboard identifier is derived with [Slug]; the keymap name gets the
// conventional "_default" suffix.
func New(name, layout string, layer []string) *Keymap {
	slug := Slug(name)
	return &Keymap{
		Version:       Version,
		Notes:         Notes,
		Documentation: Documentation,
		Keyboard:      slug,
		Keymap:        slug + "_default",
		Layout:        layout,
		Layers:        [][]string{layer},
		Author:        "",
	}
}

// Slug derives a keyboard identifier from a display name: lowercased, with
// spaces replaced by underscores. An empty name becomes "unknown".
func Slug(name string) string {
	if name == "" {
		name = "unknown"
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// TransparentLayer returns a layer of n placeholder keycodes.
// An empty keycode falls back to [DefaultKeycode].
func TransparentLayer(n int, keycode string) []string {
	if keycode == "" {
		keycode = DefaultKeycode
	}
	layer := make([]string, n)
	for i := range layer {
		layer[i] = keycode
	}
	return layer
}
