package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keebtools/via2qmk/pkg/classify"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// layoutPickerModel - Interactive layout selection
// =============================================================================

// layoutPickerModel is the bubbletea model for picking a layout identifier
// from the closed set the classifier knows. The detected layout is
// preselected and marked.
type layoutPickerModel struct {
	layouts  []classify.Layout
	detected classify.Layout
	cursor   int
	selected *classify.Layout
}

func newLayoutPickerModel(detected classify.Layout) layoutPickerModel {
	m := layoutPickerModel{
		layouts:  classify.All(),
		detected: detected,
	}
	for i, l := range m.layouts {
		if l == detected {
			m.cursor = i
			break
		}
	}
	return m
}

func (m layoutPickerModel) Init() tea.Cmd {
	return nil
}

func (m layoutPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.layouts)-1 {
				m.cursor++
			}
		case "enter":
			picked := m.layouts[m.cursor]
			m.selected = &picked
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m layoutPickerModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select Layout"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q keep detected"))
	b.WriteString("\n\n")

	for i, l := range m.layouts {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		line := cursor + style.Render(string(l))
		if l == m.detected {
			line += " " + listDimStyle.Render("(detected)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.layouts))))

	return b.String()
}

// pickLayout runs the interactive picker and returns the chosen layout.
// ok is false when the user quit without selecting.
func pickLayout(detected classify.Layout) (classify.Layout, bool, error) {
	p := tea.NewProgram(newLayoutPickerModel(detected))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("layout picker: %w", err)
	}
	m, ok := final.(layoutPickerModel)
	if !ok || m.selected == nil {
		return "", false, nil
	}
	return *m.selected, true, nil
}
