package config

import (
	"maps"
	"slices"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/ui/style"
)

func List(deps Deps) dispatchers.Action {
	return bind(list, deps)
}

// list prints known keys grouped by section in declaration order, then any
// other stored keys alphabetically under "Other".
func list(_ []string, deps Deps) error {
	values := deps.Config.All()
	if len(values) == 0 {
		deps.Out.Report(domain.SeverityInfo, "Config is empty")
		return nil
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		value, ok := values[key.Name]
		if !ok {
			continue
		}
		if key.Section != section {
			section = key.Section
			deps.Out.Report(domain.SeverityHeading, section)
		}
		deps.Out.Line(entry(key.Name, value))
		delete(values, key.Name)
	}

	if len(values) == 0 {
		return nil
	}
	deps.Out.Report(domain.SeverityHeading, "Other")
	for _, name := range slices.Sorted(maps.Keys(values)) {
		deps.Out.Line(entry(name, values[name]))
	}
	return nil
}

func entry(key, value string) string {
	return "  " + style.Info(key) + " = " + value
}
