package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keebtools/via2qmk/pkg/render/board"
	"github.com/keebtools/via2qmk/pkg/via"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string  // output file path; derived from the input when empty
	scale  float64 // pixels-per-unit multiplier
	labels bool    // draw matrix positions on the keys
}

// newRenderCmd creates the render command, an SVG preview of the key
// geometry the classifier works from.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{scale: 1}

	cmd := &cobra.Command{
		Use:   "render <input.json>",
		Short: "Draw a board's physical key geometry as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRender(c.Context(), opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (input name with .svg by default)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "size multiplier")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw matrix positions on the keys")

	return cmd
}

func runRender(ctx context.Context, opts renderOpts, inPath string) error {
	logger := loggerFromContext(ctx)

	doc, err := via.ImportJSON(inPath)
	if err != nil {
		return err
	}

	renderOpts := []board.Option{board.WithScale(opts.scale)}
	if opts.labels {
		renderOpts = append(renderOpts, board.WithLabels())
	}
	svg := board.RenderSVG(doc.Layouts.Keymap, renderOpts...)

	outPath := opts.output
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, ".json") + ".svg"
	}
	if err := os.WriteFile(outPath, svg, 0o644); err != nil {
		return err
	}
	logger.Debug("rendered board", "bytes", len(svg))

	printSuccess("Rendered %s", doc.Name)
	printFile(outPath)

	return nil
}
