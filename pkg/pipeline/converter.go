package pipeline

import (
	"github.com/charmbracelet/log"

	"github.com/keebtools/via2qmk/pkg/classify"
	"github.com/keebtools/via2qmk/pkg/geometry"
	"github.com/keebtools/via2qmk/pkg/qmk"
	"github.com/keebtools/via2qmk/pkg/via"
)

// Converter runs the conversion pipeline. It is stateless apart from its
// logger; a single Converter can serve any number of conversions.
type Converter struct {
	Logger *log.Logger
}

// NewConverter creates a converter. A nil logger falls back to log.Default().
func NewConverter(logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.Default()
	}
	return &Converter{Logger: logger}
}

// Result carries everything one conversion produced.
type Result struct {
	Keymap     *qmk.Keymap
	Properties classify.Properties
	Detected   classify.Layout // what the classifier found, override or not
	Overridden bool            // true when Options.Layout replaced the detection
}

// Convert runs extract → classify → build over a parsed VIA document.
// It never fails: classification is total, and the document was validated at
// parse time.
func (c *Converter) Convert(doc *via.Document, opts Options) *Result {
	opts.SetDefaults()

	keys := doc.Layouts.Keymap
	positions := geometry.MatrixPositions(keys)
	props := classify.Analyze(keys)
	detected := classify.Detect(props)

	c.Logger.Debug("extracted keymap",
		"keyboard", qmk.Slug(doc.Name),
		"keys", len(positions),
		"rows", len(props.Rows))
	c.Logger.Debug("classified layout",
		"layout", detected,
		"split_backspace", props.SplitBackspace,
		"split_left_shift", props.SplitLeftShift,
		"split_right_shift", props.SplitRightShift,
		"bottom_row", props.BottomRow.Shape())

	layout := string(detected)
	if opts.Layout != "" {
		layout = opts.Layout
	}

	layer := opts.Layer
	if layer == nil {
		layer = qmk.TransparentLayer(len(positions), opts.Keycode)
	}

	km := qmk.New(doc.Name, layout, layer)
	km.Author = opts.Author

	return &Result{
		Keymap:     km,
		Properties: props,
		Detected:   detected,
		Overridden: opts.Layout != "" && opts.Layout != string(detected),
	}
}
