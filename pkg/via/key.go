package via

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Kind distinguishes the two descriptor forms a VIA keymap mixes.
type Kind int

const (
	// KindLabel is a bare matrix-position string. It always carries a label
	// and implies default geometry: width 1, placed at the running cursor.
	KindLabel Kind = iota

	// KindGeometry is an object descriptor with explicit geometry. Its label
	// is optional.
	KindGeometry
)

// Key is one entry of a VIA keymap, resolved from its raw JSON form.
type Key struct {
	Kind    Kind
	Label   string  // matrix position "row,col"; empty if the descriptor had none
	Width   float64 // key width in units; 1 for bare labels
	X       float64 // absolute column as given; 0 if absent
	Y       float64 // absolute row as given; 0 if absent
	Blocker bool    // decorative placeholder, occupies space but is not a key
}

// Labeled returns a bare matrix-position key.
func Labeled(label string) Key {
	return Key{Kind: KindLabel, Label: label, Width: 1}
}

// geometry keys reserve these field names; anything else is a label candidate.
var reservedFields = map[string]bool{
	"w": true, "x": true, "y": true, "d": true, "matrix": true,
}

// UnmarshalJSON decodes a descriptor from either of its wire forms.
//
// A JSON string becomes a [KindLabel] key. A JSON object becomes a
// [KindGeometry] key with defaults w=1, x=0, y=0, d=false. The label is taken
// from the "matrix" field when present; otherwise the remaining string fields
// are scanned (in sorted name order, for determinism) for a comma-bearing
// value.
func (k *Key) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		*k = Labeled(label)
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("key descriptor must be a string or object: %w", err)
	}

	key := Key{Kind: KindGeometry, Width: 1}
	if err := decodeNumber(fields, "w", &key.Width); err != nil {
		return err
	}
	if err := decodeNumber(fields, "x", &key.X); err != nil {
		return err
	}
	if err := decodeNumber(fields, "y", &key.Y); err != nil {
		return err
	}
	if raw, ok := fields["d"]; ok {
		if err := json.Unmarshal(raw, &key.Blocker); err != nil {
			return fmt.Errorf("field d: %w", err)
		}
	}

	key.Label = findLabel(fields)
	*k = key
	return nil
}

func decodeNumber(fields map[string]json.RawMessage, name string, dst *float64) error {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %s: %w", name, err)
	}
	return nil
}

// findLabel locates the matrix position within an object descriptor.
// An explicit "matrix" field wins; the comma scan exists only for
// compatibility with pre-existing VIA exports.
func findLabel(fields map[string]json.RawMessage) string {
	if raw, ok := fields["matrix"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		if !reservedFields[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		var s string
		if err := json.Unmarshal(fields[name], &s); err != nil {
			continue
		}
		if strings.Contains(s, ",") {
			return s
		}
	}
	return ""
}
