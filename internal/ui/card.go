package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cardStyle returns a lipgloss style for a rounded-border card.
func (t *Theme) cardStyle() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !t.NoColor {
		s = s.BorderForeground(t.Border.GetForeground())
	}
	return s
}

// Card renders content inside a rounded border box with a styled title.
func (t *Theme) Card(title, content string) string {
	body := t.Primary.Bold(true).Render(title)
	if content != "" {
		body += "\n\n" + content
	}
	return t.cardStyle().Render(body)
}

// SuccessCard renders a check-marked title and detail lines in a card.
func (t *Theme) SuccessCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(t.Success.Render("✓") + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return t.cardStyle().Render(body.String())
}

// KeyValue renders an aligned "key  value" line with a muted key.
func (t *Theme) KeyValue(key, value string, width int) string {
	pad := max(width-lipgloss.Width(key), 0)
	return t.Muted.Render(key) + strings.Repeat(" ", pad) + "  " + value
}

// WarningLine renders a single warning line.
func (t *Theme) WarningLine(msg string) string {
	return t.Warning.Render("!") + " " + msg
}

// ErrorLine renders a single error line.
func (t *Theme) ErrorLine(msg string) string {
	return t.Error.Render("✗") + " " + msg
}
