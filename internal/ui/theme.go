// Package ui provides terminal presentation for licensegen: colour theme,
// headless detection, the license preview pager and recommendation output.
package ui

import "github.com/charmbracelet/lipgloss"

// Brand palette (dark variants).
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorInfo      = "#3B82F6"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// ThemeConfig selects how a Theme is built.
type ThemeConfig struct {
	NoColor bool
	// Mode is "dark" or "light"; anything else is treated as dark.
	Mode string
}

// Colors holds the resolved colour strings for a Theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Info      string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// Theme carries colour settings shared by every UI component.
type Theme struct {
	NoColor bool
	Mode    string
	Colors  Colors
}

// NewTheme builds a Theme from cfg.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{NoColor: cfg.NoColor, Mode: cfg.Mode}
	if t.Mode != "light" {
		t.Mode = "dark"
	}
	if t.Mode == "light" {
		t.Colors = Colors{
			Primary:   "#C45A3C",
			Secondary: "#5B21B6",
			Success:   "#059669",
			Warning:   "#B45309",
			Info:      "#1D4ED8",
			Error:     "#DC2626",
			Text:      "#111827",
			Muted:     "#9CA3AF",
			Border:    "#D1D5DB",
		}
		return t
	}
	t.Colors = Colors{
		Primary:   ColorPrimary,
		Secondary: ColorSecondary,
		Success:   ColorSuccess,
		Warning:   ColorWarning,
		Info:      ColorInfo,
		Error:     ColorError,
		Text:      ColorText,
		Muted:     ColorMuted,
		Border:    ColorBorder,
	}
	return t
}

// style returns a foreground style, or a plain style when colour is off.
func (t *Theme) style(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.NoColor {
		return s
	}
	return s.Foreground(lipgloss.Color(color))
}

// cardStyle returns a rounded-border card style.
func (t *Theme) cardStyle(border string) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !t.NoColor {
		s = s.BorderForeground(lipgloss.Color(border))
	}
	return s
}
