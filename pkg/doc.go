// Package pkg provides the core libraries for the via2qmk converter.
//
// # Overview
//
// via2qmk turns a VIA keyboard definition into a QMK Configurator keymap. The
// interesting part is not the file plumbing but the classifier: a VIA document
// describes physical key geometry, and the converter has to recognize which of
// the common 60% layouts that geometry corresponds to. The pkg directory is
// organized along that data flow:
//
//  1. [via] - VIA document model and descriptor decoding
//  2. [geometry] - key placement, row catalog, matrix-position extraction
//  3. [classify] - feature aggregation and layout detection
//  4. [qmk] - QMK Configurator keymap model and export
//  5. [pipeline] - orchestration (extract → classify → build)
//  6. [render/board] - SVG preview of the physical layout
//
// # Quick Start
//
// Convert a VIA definition to a QMK keymap:
//
//	import (
//	    "github.com/keebtools/via2qmk/pkg/pipeline"
//	    "github.com/keebtools/via2qmk/pkg/qmk"
//	    "github.com/keebtools/via2qmk/pkg/via"
//	)
//
//	// 1. Parse the VIA document
//	doc, _ := via.ImportJSON("board.json")
//
//	// 2. Run the pipeline
//	conv := pipeline.NewConverter(nil)
//	res := conv.Convert(doc, pipeline.Options{})
//
//	// 3. Write the QMK keymap
//	_ = qmk.ExportJSON(res.Keymap, "keymap.json")
//
// The lower-level packages are usable on their own. To just identify a
// layout:
//
//	layout := classify.DetectKeys(doc.Layouts.Keymap)
//
// # Main Packages
//
// [via] - Document model for VIA JSON exports. The keymap mixes two
// descriptor forms (bare matrix-position strings and geometry objects);
// decoding resolves both into one tagged Key type.
//
// [geometry] - Pure geometry over decoded keys: the running x-cursor and row
// tracker, per-row catalogs of offsets/widths/blockers, and the ordered
// matrix-position list whose length is the canonical key count.
//
// [classify] - Aggregates geometry into feature flags (split backspace, split
// shifts, ANSI enter, bottom-row shape) and maps them to one of a closed set
// of QMK layout identifiers, with "LAYOUT" as the total fallback.
//
// [qmk] - The QMK Configurator document, transparent layer generation, JSON
// export, and external layer import.
//
// [pipeline] - Glues the above together behind one Convert call so the CLI
// and library users share behavior.
//
// [render/board] - Draws the decoded geometry as an SVG, mainly for eyeballing
// what the classifier saw.
//
// [errors] - Coded errors shared by every package that touches I/O.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/classify/... # Specific package
//	go test -run Example       # Examples only
//
// [via]: https://pkg.go.dev/github.com/keebtools/via2qmk/pkg/via
// [geometry]: https://pkg.go.dev/github.com/keebtools/via2qmk/pkg/geometry
// [classify]: https://pkg.go.dev/github.com/keebtools/via2qmk/pkg/classify
// [qmk]: https://pkg.go.dev/github.com/keebtools/via2qmk/pkg/qmk
// [pipeline]: https://pkg.go.dev/github.com/keebtools/via2qmk/pkg/pipeline
// [render/board]: https://pkg.go.dev/github.com/keebtools/via2qmk/pkg/render/board
// [errors]: https://pkg.go.dev/github.com/keebtools/via2qmk/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/keebtools/via2qmk/pkg/buildinfo
package pkg
