package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vibetodo/internal/state"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

const helpLine = "a add  r remove  t toggle  s save  l load  j/k move  q quit"

// View renders the current snapshot.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TODO List Manager"))
	b.WriteString("\n\n")

	if len(m.snap.Tasks) == 0 {
		b.WriteString(helpStyle.Render("  (no tasks)"))
		b.WriteString("\n")
	}
	for i, t := range m.snap.Tasks {
		b.WriteString(m.renderTask(i, t))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.editing {
		b.WriteString(promptStyle.Render("New task: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString(helpStyle.Render(helpLine))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render("Status: " + m.snap.Status))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTask(i int, t state.Task) string {
	cursor := "  "
	if i == m.snap.Selected {
		cursor = "> "
	}
	marker := "[ ] "
	if t.Done {
		marker = "[x] "
	}
	line := cursor + marker + t.Text
	if i == m.snap.Selected {
		return selectedStyle.Render(line)
	}
	if t.Done {
		return doneStyle.Render(line)
	}
	return line
}
