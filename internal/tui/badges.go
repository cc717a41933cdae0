package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/llmboard/internal/accordion"
)

// formatFAQIndicator returns a human-readable string for the accordion state.
func formatFAQIndicator(acc accordion.Accordion, total int) string {
	if idx, ok := acc.Expanded(); ok {
		return fmt.Sprintf("FAQ: %d/%d open", idx+1, total)
	}
	return "FAQ: collapsed"
}

// renderFAQBadge returns a Lipgloss-styled badge string for the accordion state.
func renderFAQBadge(acc accordion.Accordion, total int, plain bool) string {
	badgeStyle := lipgloss.NewStyle().Padding(0, 1).MarginLeft(1)
	if !plain {
		badgeStyle = badgeStyle.Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0"))
	}
	return badgeStyle.Render(formatFAQIndicator(acc, total))
}

// renderTitleBadge returns a Lipgloss-styled badge string for the page title.
func renderTitleBadge(title string, plain bool) string {
	badgeStyle := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	if !plain {
		badgeStyle = badgeStyle.Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230"))
	}
	return badgeStyle.Render(title)
}

// renderCountBadge summarizes how many datasets and rows are on the board.
func renderCountBadge(datasets, rows int, plain bool) string {
	badgeStyle := lipgloss.NewStyle().Padding(0, 1).MarginLeft(1)
	if !plain {
		badgeStyle = badgeStyle.Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0"))
	}
	return badgeStyle.Render(fmt.Sprintf("%d datasets · %d results", datasets, rows))
}
