package pipeline

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/keebtools/via2qmk/pkg/classify"
	"github.com/keebtools/via2qmk/pkg/via"
)

// bareDoc builds a document of n bare matrix-position keys. Bare keys carry
// no geometry, so classification always falls back to the generic layout.
func bareDoc(name string, n int) *via.Document {
	keys := make([]via.Key, n)
	for i := range keys {
		keys[i] = via.Labeled(fmt.Sprintf("%d,%d", i/14, i%14))
	}
	return &via.Document{Name: name, Layouts: via.Layouts{Keymap: keys}}
}

func TestConvertDefaults(t *testing.T) {
	conv := NewConverter(nil)
	res := conv.Convert(bareDoc("Test Board", 62), Options{})

	if res.Detected != classify.LayoutFallback {
		t.Errorf("Detected = %q, want %q", res.Detected, classify.LayoutFallback)
	}
	if res.Overridden {
		t.Error("Overridden = true, want false")
	}
	if res.Keymap.Layout != string(classify.LayoutFallback) {
		t.Errorf("Layout = %q, want %q", res.Keymap.Layout, classify.LayoutFallback)
	}
	if res.Keymap.Keyboard != "test_board" {
		t.Errorf("Keyboard = %q, want %q", res.Keymap.Keyboard, "test_board")
	}
}

func TestConvertLayerLengthMatchesKeyCount(t *testing.T) {
	conv := NewConverter(nil)
	for _, n := range []int{0, 1, 61, 62} {
		res := conv.Convert(bareDoc("x", n), Options{})
		if res.Properties.TotalKeys != n {
			t.Errorf("TotalKeys = %d, want %d", res.Properties.TotalKeys, n)
		}
		if got := len(res.Keymap.Layers[0]); got != n {
			t.Errorf("layer length = %d, want %d", got, n)
		}
	}
}

func TestConvertLayoutOverride(t *testing.T) {
	conv := NewConverter(nil)
	res := conv.Convert(bareDoc("x", 62), Options{Layout: "LAYOUT_60_ansi"})

	if res.Keymap.Layout != "LAYOUT_60_ansi" {
		t.Errorf("Layout = %q, want override", res.Keymap.Layout)
	}
	if res.Detected != classify.LayoutFallback {
		t.Errorf("Detected = %q, want %q", res.Detected, classify.LayoutFallback)
	}
	if !res.Overridden {
		t.Error("Overridden = false, want true")
	}

	// An override equal to the detection is not an override.
	same := conv.Convert(bareDoc("x", 62), Options{Layout: string(classify.LayoutFallback)})
	if same.Overridden {
		t.Error("Overridden = true for matching override, want false")
	}
}

func TestConvertExternalLayerVerbatim(t *testing.T) {
	conv := NewConverter(nil)
	layer := []string{"KC_ESC", "KC_1"} // deliberately shorter than the key count

	res := conv.Convert(bareDoc("x", 62), Options{Layer: layer})
	if diff := cmp.Diff(layer, res.Keymap.Layers[0]); diff != "" {
		t.Errorf("layer mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertKeycodeAndAuthor(t *testing.T) {
	conv := NewConverter(nil)
	res := conv.Convert(bareDoc("x", 3), Options{Keycode: "KC_NO", Author: "someone"})

	want := []string{"KC_NO", "KC_NO", "KC_NO"}
	if diff := cmp.Diff(want, res.Keymap.Layers[0]); diff != "" {
		t.Errorf("layer mismatch (-want +got):\n%s", diff)
	}
	if res.Keymap.Author != "someone" {
		t.Errorf("Author = %q, want %q", res.Keymap.Author, "someone")
	}
}

func TestConvertIdempotent(t *testing.T) {
	conv := NewConverter(nil)
	doc := bareDoc("Test Board", 62)
	opts := Options{Author: "someone"}

	first := conv.Convert(doc, opts)
	second := conv.Convert(doc, opts)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("conversion is not idempotent (-first +second):\n%s", diff)
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()
	if opts.Keycode != "KC_TRNS" {
		t.Errorf("Keycode = %q, want KC_TRNS", opts.Keycode)
	}

	custom := Options{Keycode: "KC_NO"}
	custom.SetDefaults()
	if custom.Keycode != "KC_NO" {
		t.Errorf("Keycode = %q, want KC_NO", custom.Keycode)
	}
}
