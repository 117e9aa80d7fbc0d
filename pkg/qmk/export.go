package qmk

import (
	"encoding/json"
	"io"
	"os"

	kberrors "github.com/keebtools/via2qmk/pkg/errors"
)

// WriteJSON encodes the keymap as indented JSON and writes it to w.
// The output round-trips through QMK Configurator's importer.
func WriteJSON(k *Keymap, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(k); err != nil {
		return kberrors.Wrap(kberrors.ErrCodeInternal, err, "encode keymap")
	}
	return nil
}

// ExportJSON writes the keymap to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(k *Keymap, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return kberrors.Wrap(kberrors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(k, f)
}

// ImportLayer reads an external default layer: a JSON array of keycode
// strings. The layer is used verbatim; no length validation is performed
// against the detected key count.
func ImportLayer(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, kberrors.New(kberrors.ErrCodeFileNotFound, "layer file %s does not exist", path)
		}
		return nil, kberrors.Wrap(kberrors.ErrCodeInvalidLayer, err, "read %s", path)
	}
	var layer []string
	if err := json.Unmarshal(data, &layer); err != nil {
		return nil, kberrors.Wrap(kberrors.ErrCodeInvalidLayer, err, "%s is not a JSON array of keycodes", path)
	}
	return layer, nil
}
