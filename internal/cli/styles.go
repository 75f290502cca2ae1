package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifeadvance/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
)

func checkbox(done bool) string {
	if done {
		return doneStyle.Render("[x]")
	}
	return pendingStyle.Render("[ ]")
}

func renderPriority(p models.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		return string(p)
	}
	return style.Render(string(p))
}
