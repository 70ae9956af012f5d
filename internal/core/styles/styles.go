// Package styles provides shared lipgloss v2 styles for CLI and TUI output.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported semantic colors.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI text styles.
	TextPrimaryBoldStyle    lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	TitleStyle   lipgloss.Style
	DividerStyle lipgloss.Style

	// Picker row styles.
	RowStyle           lipgloss.Style
	RowSelectedStyle   lipgloss.Style
	RowMarkedStyle     lipgloss.Style
	RowCreateStyle     lipgloss.Style
	MatchStyle         lipgloss.Style
	MatchSelectedStyle lipgloss.Style
	DeleteBannerStyle  lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextPrimaryBoldStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TextForegroundBoldStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	TextMutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TextSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	RowStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	RowSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	RowMarkedStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Strikethrough(true)
	RowCreateStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Italic(true)
	MatchStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)
	MatchSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true)
	DeleteBannerStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorError).
		Bold(true).
		Padding(0, 1)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
