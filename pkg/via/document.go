package via

import (
	"encoding/json"
	"io"
	"os"

	kberrors "github.com/keebtools/via2qmk/pkg/errors"
)

// Document is a VIA keyboard definition, reduced to the fields the converter
// consumes. Unknown fields are ignored.
type Document struct {
	Name    string  `json:"name"`
	Layouts Layouts `json:"layouts"`
}

// Layouts holds the physical keymap of a VIA document.
type Layouts struct {
	Keymap []Key `json:"keymap"`
}

// ReadJSON decodes a VIA document from r.
//
// It returns an INVALID_DOCUMENT error when the JSON is malformed or when
// layouts.keymap is absent, which is the one field the converter cannot work
// without. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, kberrors.Wrap(kberrors.ErrCodeInvalidDocument, err, "not a valid VIA JSON document")
	}
	if doc.Layouts.Keymap == nil {
		return nil, kberrors.New(kberrors.ErrCodeInvalidDocument, "document has no layouts.keymap")
	}
	return &doc, nil
}

// ImportJSON reads the VIA document at path.
//
// A missing file yields a FILE_NOT_FOUND error; decoding failures carry the
// same codes as [ReadJSON].
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, kberrors.New(kberrors.ErrCodeFileNotFound, "input file %s does not exist", path)
		}
		return nil, kberrors.Wrap(kberrors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
