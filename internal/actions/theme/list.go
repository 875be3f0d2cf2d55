package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/ui/style"
)

func List(deps Deps) dispatchers.Action {
	return bind(list, deps)
}

func list(_ []string, deps Deps) error {
	active := current(deps)

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == active {
			marker = style.Success("* ")
		}
		line := fmt.Sprintf("%s%-14s", marker, name)
		if style.Enabled() {
			line += "  " + renderColorPreview(style.Themes[name])
		}
		deps.Out.Line(line)
	}
	return nil
}

// renderColorPreview returns colored text samples for a theme.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("[+] ", cfg.Success) +
		colorize("[*] ", cfg.Info) +
		colorize("[!] ", cfg.Warning) +
		colorize("[X] ", cfg.Error) +
		colorize("[?] ", cfg.Question) +
		colorize("[~]", cfg.Muted)
}
