package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adproof/adproof/pkg/format"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// FormatListModel - Interactive target format selection
// =============================================================================

// FormatListModel is the bubbletea model for picking target formats. The
// source format is shown but cannot be selected as a target.
type FormatListModel struct {
	Formats []format.Config
	Source  string
	Cursor  int
	Checked map[int]bool
	Done    bool
}

// NewFormatListModel creates a new format list model.
func NewFormatListModel(formats []format.Config, source string) FormatListModel {
	return FormatListModel{
		Formats: formats,
		Source:  source,
		Checked: make(map[int]bool),
	}
}

func (m FormatListModel) Init() tea.Cmd {
	return nil
}

func (m FormatListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Checked = make(map[int]bool)
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Formats)-1 {
				m.Cursor++
			}
		case " ":
			if m.Formats[m.Cursor].Key() != m.Source {
				m.Checked[m.Cursor] = !m.Checked[m.Cursor]
			}
		case "a":
			for i, f := range m.Formats {
				if f.Key() != m.Source {
					m.Checked[i] = true
				}
			}
		case "enter":
			m.Done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m FormatListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Target Formats"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	for i, f := range m.Formats {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		check := "[ ]"
		if m.Checked[i] {
			check = "[" + StyleSuccess.Render("x") + "]"
		}

		label := fmt.Sprintf("%-10s %-28s %s", f.Key(), f.Name, listDimStyle.Render(f.Platform))
		line := cursor + check + " " + label

		switch {
		case f.Key() == m.Source:
			b.WriteString(listDimStyle.Render(cursor + "src " + label))
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d selected", len(m.SelectedKeys()))))

	return b.String()
}

// SelectedKeys returns the chosen format keys in catalog order, or nil when
// the picker was aborted.
func (m FormatListModel) SelectedKeys() []string {
	if !m.Done {
		return nil
	}
	var keys []string
	for i, f := range m.Formats {
		if m.Checked[i] {
			keys = append(keys, f.Key())
		}
	}
	return keys
}
