// Package pipeline provides the core conversion pipeline for via2qmk.
//
// This package implements the complete extract → classify → build pipeline
// over a parsed VIA document. Centralizing it here keeps the CLI thin and
// gives library users the exact behavior the command line has.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Extract: derive matrix positions and key geometry from the keymap
//  2. Classify: aggregate geometry into features and pick a layout identifier
//  3. Build: assemble the QMK keymap document with a default layer
//
// # Usage
//
//	conv := pipeline.NewConverter(logger)
//	res := conv.Convert(doc, pipeline.Options{})
//	err := qmk.ExportJSON(res.Keymap, "out.json")
//
// Conversion is pure over the parsed document: running it twice with the
// same inputs yields identical results.
package pipeline

import "github.com/keebtools/via2qmk/pkg/qmk"

// Options control a single conversion.
// The zero value classifies the layout, generates a transparent layer sized
// to the detected key count, and leaves the author empty.
type Options struct {
	// Layout, when non-empty, bypasses the classifier and is written into
	// the document verbatim. The classifier still runs so callers can report
	// what would have been detected.
	Layout string

	// Layer, when non-nil, replaces the generated placeholder layer
	// verbatim. Its length is not validated against the detected key count.
	Layer []string

	// Keycode is the placeholder keycode for generated layers.
	// Empty means qmk.DefaultKeycode.
	Keycode string

	// Author is written into the output document's author field.
	Author string
}

// SetDefaults fills unset options with their defaults.
func (o *Options) SetDefaults() {
	if o.Keycode == "" {
		o.Keycode = qmk.DefaultKeycode
	}
}
