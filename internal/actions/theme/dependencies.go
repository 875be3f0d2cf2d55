package theme

import (
	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/ui/style"
	"github.com/interutils/cli/internal/usage"
)

const configKey = "color_theme"

// Chooser is the numbered-list prompt used by Pick.
type Chooser interface {
	Choose(options []string, question string, defaultIndex int) int
}

type Deps struct {
	Config     domain.ConfigProvider
	Out        domain.Reporter
	Chooser    Chooser
	ThemeNames []string
	// Apply re-styles output after the theme changed.
	Apply func(cfg map[string]string)
}

// DefaultDeps fills the theme list and re-initializes the style package on
// change, keeping color on or off as it is.
func DefaultDeps(cfg domain.ConfigProvider, out domain.Reporter, chooser Chooser) Deps {
	return Deps{
		Config:     cfg,
		Out:        out,
		Chooser:    chooser,
		ThemeNames: style.ThemeNames(),
		Apply: func(values map[string]string) {
			style.Init(style.Enabled(), values)
		},
	}
}

func bind(fn func([]string, Deps) error, deps Deps) dispatchers.Action {
	return func(args []string) error {
		return usage.Report(deps.Out, fn(args, deps))
	}
}

// current returns the configured theme with its -dark/-light suffix resolved.
func current(deps Deps) string {
	name, _ := deps.Config.Get(configKey)
	if name == "" {
		name = "default"
	}
	return style.ResolveThemeName(name)
}

func apply(name string, deps Deps) error {
	if err := deps.Config.Set(configKey, name); err != nil {
		return err
	}
	if deps.Apply != nil {
		deps.Apply(deps.Config.All())
	}
	deps.Out.Report(domain.SeveritySuccess, "Theme set to "+style.Success(name))
	return nil
}
