package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Brand colors (dark background variants).
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// light holds the light background variant of each brand color.
var light = map[string]string{
	ColorPrimary:   "#C45A3C",
	ColorSecondary: "#5B21B6",
	ColorSuccess:   "#059669",
	ColorWarning:   "#D97706",
	ColorError:     "#DC2626",
	ColorText:      "#111827",
	ColorMuted:     "#6B7280",
	ColorBorder:    "#D1D5DB",
}

// ThemeConfig selects how a Theme is built.
type ThemeConfig struct {
	NoColor bool
	Mode    string // "dark", "light" or "" for automatic
}

// ThemeColors holds the resolved hex colors of a theme.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// Theme bundles colors and the styles derived from them.
type Theme struct {
	NoColor bool
	Colors  ThemeColors

	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Border  lipgloss.Style
}

// NewTheme creates a Theme. NO_COLOR in the environment forces NoColor.
func NewTheme(cfg ThemeConfig) *Theme {
	noColor := cfg.NoColor || os.Getenv("NO_COLOR") != ""
	t := &Theme{NoColor: noColor, Colors: resolveColors(cfg.Mode)}

	if noColor {
		plain := lipgloss.NewStyle()
		t.Primary, t.Success, t.Warning, t.Error, t.Muted, t.Border = plain, plain, plain, plain, plain, plain
		return t
	}

	t.Primary = lipgloss.NewStyle().Foreground(adaptive(ColorPrimary, cfg.Mode))
	t.Success = lipgloss.NewStyle().Foreground(adaptive(ColorSuccess, cfg.Mode))
	t.Warning = lipgloss.NewStyle().Foreground(adaptive(ColorWarning, cfg.Mode))
	t.Error = lipgloss.NewStyle().Foreground(adaptive(ColorError, cfg.Mode))
	t.Muted = lipgloss.NewStyle().Foreground(adaptive(ColorMuted, cfg.Mode))
	t.Border = lipgloss.NewStyle().Foreground(adaptive(ColorBorder, cfg.Mode))
	return t
}

func resolveColors(mode string) ThemeColors {
	pick := func(dark string) string {
		if mode == "light" {
			return light[dark]
		}
		return dark
	}
	return ThemeColors{
		Primary:   pick(ColorPrimary),
		Secondary: pick(ColorSecondary),
		Success:   pick(ColorSuccess),
		Warning:   pick(ColorWarning),
		Error:     pick(ColorError),
		Text:      pick(ColorText),
		Muted:     pick(ColorMuted),
		Border:    pick(ColorBorder),
	}
}

// adaptive returns a color that follows the terminal background unless mode
// pins it.
func adaptive(dark, mode string) lipgloss.TerminalColor {
	switch mode {
	case "dark":
		return lipgloss.Color(dark)
	case "light":
		return lipgloss.Color(light[dark])
	default:
		return lipgloss.AdaptiveColor{Light: light[dark], Dark: dark}
	}
}
