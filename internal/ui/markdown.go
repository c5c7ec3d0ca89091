package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// markdownWidth is the word wrap column for rendered markdown.
const markdownWidth = 80

// RenderMarkdown renders md for the terminal. Headless or colorless output
// uses glamour's plain "notty" style.
func RenderMarkdown(theme *Theme, hm *HeadlessManager, md string) (string, error) {
	style := glamour.WithAutoStyle()
	if theme.NoColor || hm.IsHeadless() {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(markdownWidth))
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
