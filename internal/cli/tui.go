package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gitcanvas/gitcanvas/pkg/scene"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// themeRow is one theme as shown in the listing and the picker.
type themeRow struct {
	Theme theme.Theme
	Motif string // activity scene identifier
}

func themeRows(themes *theme.Registry, scenes *scene.Registry) []themeRow {
	names := themes.Names()
	rows := make([]themeRow, len(names))
	for i, name := range names {
		rows[i] = themeRow{Theme: themes.Lookup(name), Motif: scenes.Motif(name)}
	}
	return rows
}

// swatch renders a two-cell block in the given hex color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " " + hex
}

// themeTable lays rows out as a lipgloss table. highlight is the index of
// the row to emphasize, or -1.
func themeTable(rows []themeRow, highlight int) *table.Table {
	data := make([][]string, len(rows))
	for i, r := range rows {
		cursor := "  "
		if i == highlight {
			cursor = "▸ "
		}
		data[i] = []string{
			cursor + r.Theme.Name,
			swatch(r.Theme.Background),
			swatch(r.Theme.Title),
			swatch(r.Theme.Text),
			swatch(r.Theme.Border),
			r.Motif,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Theme", "Background", "Title", "Text", "Border", "Activity").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == highlight && col == 0:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			case col == 5:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})
}

// =============================================================================
// ThemeListModel - Interactive theme selection
// =============================================================================

// ThemeListModel is the bubbletea model for interactive theme selection.
type ThemeListModel struct {
	Rows     []themeRow
	Cursor   int
	Offset   int
	Height   int
	Selected string
}

// NewThemeListModel creates a new theme list model.
func NewThemeListModel(rows []themeRow) ThemeListModel {
	return ThemeListModel{Rows: rows, Height: 12}
}

func (m ThemeListModel) Init() tea.Cmd {
	return nil
}

func (m ThemeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Rows) == 0 {
				return m, nil
			}
			m.Selected = m.Rows[m.Cursor].Theme.Name
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 3)
	}
	return m, nil
}

func (m ThemeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Rows))
	b.WriteString(themeTable(m.Rows[m.Offset:end], m.Cursor-m.Offset).Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}
