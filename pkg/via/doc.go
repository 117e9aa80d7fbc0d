// Package via models VIA keyboard-definition documents.
//
// # Overview
//
// VIA exports describe a keyboard as a display name plus a keymap: an ordered
// sequence of key descriptors. A descriptor is either a bare matrix-position
// string ("row,col") or a JSON object carrying geometry (width, x/y offsets,
// decorative flag) and, usually, a matrix-position label.
//
// This package resolves that loosely-typed mix once, at parse time, into a
// tagged [Key] value. Downstream packages (geometry extraction, layout
// classification) never see raw JSON.
//
// # Label discovery
//
// Well-formed documents carry the matrix position in an explicit "matrix"
// field on object descriptors. Older VIA exports instead bury it in an
// arbitrarily-named field; for those, the decoder falls back to scanning the
// remaining string fields for a comma-bearing value. An object with neither
// yields a [Key] without a label; its geometry still participates in row and
// cursor bookkeeping.
//
// # Usage
//
//	doc, err := via.ImportJSON("board.json")
//	if err != nil {
//	    return err
//	}
//	for _, k := range doc.Layouts.Keymap {
//	    if k.Kind == via.KindGeometry && k.Blocker {
//	        // decorative gap, not a physical key
//	    }
//	}
package via
