package theme

import (
	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/prompt"
)

func Pick(deps Deps) dispatchers.Action {
	return bind(pick, deps)
}

func pick(_ []string, deps Deps) error {
	if len(deps.ThemeNames) == 0 {
		deps.Out.Report(domain.SeverityCaution, "No themes available!")
		return nil
	}

	active := current(deps)
	def := prompt.Cancelled
	for i, name := range deps.ThemeNames {
		if name == active {
			def = i
			break
		}
	}

	c := deps.Chooser.Choose(deps.ThemeNames, "Choose theme:", def)
	switch {
	case c == prompt.Invalid:
		deps.Out.Report(domain.SeverityCaution, "Invalid selection!")
		return nil
	case c < 0:
		return nil
	}

	chosen := deps.ThemeNames[c]
	if chosen == active {
		deps.Out.Report(domain.SeverityInfo, "Theme "+chosen+" is already active")
		return nil
	}
	return apply(chosen, deps)
}
