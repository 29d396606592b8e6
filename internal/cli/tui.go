package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/breadboard/pkg/blueprint"
	"github.com/matzehuels/breadboard/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// sectionListModel - Interactive section browser
// =============================================================================

// sectionListModel is the bubbletea model behind inspect --interactive.
// Enter expands the section under the cursor and lists its entries below
// the table; enter on the expanded section collapses it.
type sectionListModel struct {
	rows     []sectionRow
	cursor   int
	expanded int // -1 when collapsed
	height   int
	offset   int
	preview  int
}

func newSectionListModel(rows []sectionRow, preview int) sectionListModel {
	return sectionListModel{
		rows:     rows,
		expanded: -1,
		height:   15,
		preview:  preview,
	}
}

func (m sectionListModel) Init() tea.Cmd {
	return nil
}

func (m sectionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveTo(m.cursor - 1)
		case "down", "j":
			m.moveTo(m.cursor + 1)
		case "home", "g":
			m.moveTo(0)
		case "end", "G":
			m.moveTo(len(m.rows) - 1)
		case "enter", " ":
			if m.expanded == m.cursor {
				m.expanded = -1
			} else {
				m.expanded = m.cursor
			}
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 5)
		m.moveTo(m.cursor)
	}
	return m, nil
}

// moveTo places the cursor at i, clamped to the rows, and scrolls the
// window to keep it visible.
func (m *sectionListModel) moveTo(i int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = min(max(i, 0), len(m.rows)-1)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m sectionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Blueprint Sections"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ expand  q quit"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(listDimStyle.Render("  container is empty"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.offset+m.height, len(m.rows))
	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		label := r.label
		if label == "" {
			label = "-"
		}
		rows = append(rows, []string{cursor, fmt.Sprint(r.block), fmt.Sprint(r.id), label, fmt.Sprint(r.sec.Len())})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Block", "Section", "Component", "Entries").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			idx := m.offset + row
			if idx >= len(m.rows) {
				return lipgloss.NewStyle()
			}
			switch {
			case idx == m.cursor:
				return listSelectedStyle
			case m.rows[idx].label == "":
				return listDimStyle
			case col == 3:
				return StyleName
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.rows))))
	b.WriteString("\n")

	if m.expanded >= 0 {
		r := m.rows[m.expanded]
		b.WriteString("\n")
		b.WriteString(StyleTitle.Render(fmt.Sprintf("section %d", r.id)))
		if r.label != "" {
			b.WriteString(" " + StyleName.Render(r.label))
		}
		b.WriteString(" " + StyleDim.Render(plural(r.sec.Len(), "entry")))
		b.WriteString("\n")
		for _, eid := range r.sec.IDs() {
			b.WriteString("  " + entryLine(r.sec, eid, m.preview) + "\n")
		}
	}

	return b.String()
}

// browseSections runs the section browser until the user quits.
func browseSections(ctx context.Context, in io.Reader, out io.Writer, bp *blueprint.Blueprint, preview int) error {
	p := tea.NewProgram(newSectionListModel(sectionRows(bp), preview),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "section browser")
	}
	return nil
}

// isTerminal reports whether w is a terminal the browser can draw on.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
