package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/keebtools/via2qmk/pkg/classify"
	"github.com/keebtools/via2qmk/pkg/via"
)

// newInspectCmd creates the inspect command, which prints the full property
// bag behind a layout detection. This is the diagnostic to reach for when a
// board classifies as something unexpected.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input.json>",
		Short: "Show the layout analysis for a VIA JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInspect(c.Context(), args[0])
		},
	}
}

func runInspect(ctx context.Context, inPath string) error {
	logger := loggerFromContext(ctx)

	doc, err := via.ImportJSON(inPath)
	if err != nil {
		return err
	}

	props := classify.Analyze(doc.Layouts.Keymap)
	detected := classify.Detect(props)
	logger.Debug("analyzed keymap", "rows", len(props.Rows), "blockers", len(props.Blockers))

	fmt.Println(styleTitle.Render("Layout Analysis") + " " + styleDim.Render(doc.Name))
	fmt.Println()
	fmt.Println(propertiesTable(props))
	fmt.Println()
	printKeyValue("Detected layout", string(detected))

	return nil
}

// propertiesTable renders the property bag as a two-column table.
func propertiesTable(props classify.Properties) string {
	rows := [][]string{
		{"Total keys", fmt.Sprintf("%d", props.TotalKeys)},
		{"Split backspace", yesNo(props.SplitBackspace)},
		{"Split right shift", yesNo(props.SplitRightShift)},
		{"Split left shift", yesNo(props.SplitLeftShift)},
		{"Standard backspace", yesNo(props.StandardBackspace)},
		{"ANSI enter", yesNo(props.ANSIEnter)},
		{"Left modifiers width", fmt.Sprintf("%g", props.BottomRow.LeftMods)},
		{"Spacebar width", fmt.Sprintf("%g", props.BottomRow.Space)},
		{"Right modifiers width", fmt.Sprintf("%g", props.BottomRow.RightMods)},
		{"Bottom-row blockers", yesNo(props.BottomRow.HasBlockers)},
		{"Standard WK", yesNo(props.BottomRow.StandardWK)},
		{"Tsangan", yesNo(props.BottomRow.Tsangan)},
		{"HHKB", yesNo(props.BottomRow.HHKB)},
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Property", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return styleValue
		}).
		Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
