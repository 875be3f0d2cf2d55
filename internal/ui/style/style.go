// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Question, ...) rather than visual.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle  lipgloss.Style
	warningStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	infoStyle     lipgloss.Style
	questionStyle lipgloss.Style
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	promptStyle   lipgloss.Style
)

// Init initializes the style package with the given enabled state and config.
// NO_COLOR and IU_NO_COLOR (any non-empty value) force styling off.
//
// cfg supplies color_theme and color_* overrides; nil means defaults.
// Call once from main before any output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("IU_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// GetColors returns the current color configuration.
func GetColors() ColorConfig {
	return colors
}

// initStyles builds the lipgloss styles from the given colors using the
// ANSI 256-color palette regardless of TTY detection.
func initStyles(colors ColorConfig) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	questionStyle = makeStyle(colors.Question)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header).Bold(true)
	promptStyle = makeStyle(colors.Prompt).Bold(true)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(successStyle, text) }

// Warning styles text for cautions and numbered choice lists.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(errorStyle, text) }

// Info styles informational text and command names.
func Info(text string) string { return render(infoStyle, text) }

// Question styles prompts that expect an answer.
func Question(text string) string { return render(questionStyle, text) }

// Header styles section headers and titles.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary or verbose information.
func Muted(text string) string { return render(mutedStyle, text) }

// Prompt styles the menu breadcrumb prompt.
func Prompt(text string) string { return render(promptStyle, text) }
