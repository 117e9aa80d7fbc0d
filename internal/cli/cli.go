// Package cli implements the via2qmk command-line interface.
//
// This package provides commands for converting VIA keyboard definitions to
// QMK keymap documents, inspecting the geometric analysis behind a layout
// detection, and rendering a board's physical geometry as SVG. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - convert: Convert a VIA JSON export to a QMK keymap JSON file
//   - inspect: Show the layout analysis for a VIA JSON export
//   - render: Draw a board's physical key geometry as SVG
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// # Example
//
//	import "github.com/keebtools/via2qmk/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/keebtools/via2qmk/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "via2qmk"

// Execute runs the via2qmk CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree against
// ctx so conversions abort cleanly on SIGINT.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "via2qmk converts VIA keyboard layouts to QMK keymaps",
		Long: `via2qmk reads a VIA keyboard-definition JSON file, detects which 60%
physical layout the key geometry describes (ANSI, ISO, HHKB, Tsangan, WKL and
split-key variants), and writes a QMK Configurator keymap with a default layer.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
