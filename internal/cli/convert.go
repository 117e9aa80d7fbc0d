package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keebtools/via2qmk/pkg/pipeline"
	"github.com/keebtools/via2qmk/pkg/qmk"
	"github.com/keebtools/via2qmk/pkg/via"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	layout      string // explicit layout identifier, bypasses the classifier
	layerPath   string // external default-layer file
	interactive bool   // pick the layout from a list instead
}

// newConvertCmd creates the convert command.
//
// Layout precedence: --layout flag, then a per-keyboard override from the
// config file, then the classifier's detection. With --interactive the
// detected layout is preselected in a picker and the user's choice is final.
func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <input.json> <output.json>",
		Short: "Convert a VIA JSON export to a QMK keymap",
		Long: `Convert a VIA keyboard-definition JSON file to a QMK Configurator keymap.

The physical layout is detected from key geometry. Use --layout to force a
specific identifier, or --interactive to choose one from the known set.

Examples:
  via2qmk convert board.json keymap.json
  via2qmk convert board.json keymap.json --layout LAYOUT_60_tsangan
  via2qmk convert board.json keymap.json --default-layer layer0.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runConvert(c.Context(), opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.layout, "layout", "", "override the auto-detected layout")
	cmd.Flags().StringVar(&opts.layerPath, "default-layer", "", "JSON file with keycodes for the default layer")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the layout interactively")

	return cmd
}

func runConvert(ctx context.Context, opts convertOpts, inPath, outPath string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	doc, err := via.ImportJSON(inPath)
	if err != nil {
		return err
	}

	var layer []string
	if opts.layerPath != "" {
		layer, err = qmk.ImportLayer(opts.layerPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded external default layer", "keycodes", len(layer))
	}

	override := opts.layout
	if override == "" {
		if v, ok := cfg.Overrides[qmk.Slug(doc.Name)]; ok {
			logger.Debug("applying config override", "layout", v)
			override = v
		}
	}

	conv := pipeline.NewConverter(logger)
	res := conv.Convert(doc, pipeline.Options{
		Layout:  override,
		Layer:   layer,
		Keycode: cfg.Keycode,
		Author:  cfg.Author,
	})

	if opts.interactive {
		picked, ok, err := pickLayout(res.Detected)
		if err != nil {
			return err
		}
		if ok {
			res.Keymap.Layout = string(picked)
		}
	}

	if err := qmk.ExportJSON(res.Keymap, outPath); err != nil {
		return err
	}
	prog.done("converted " + inPath)

	printSuccess("Converted %s", inPath)
	printFile(outPath)
	if res.Keymap.Layout != string(res.Detected) {
		printKeyValue("Layout", res.Keymap.Layout+" "+styleDim.Render("(detected: "+string(res.Detected)+")"))
	} else {
		printKeyValue("Layout", res.Keymap.Layout)
	}
	printKeyValue("Keys", fmt.Sprintf("%d", res.Properties.TotalKeys))

	return nil
}
