package theme

import (
	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/ui/style"
	"github.com/interutils/cli/internal/usage"
)

func Set(deps Deps) dispatchers.Action {
	return bind(setTheme, deps)
}

// setTheme accepts a full variant name or a base name; base names follow the
// terminal background.
func setTheme(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("theme", "set <theme>")
	}

	name := args[0]
	if !style.IsKnownTheme(name) {
		return usage.InvalidArgument(name, "unknown theme, try \"list\"")
	}

	return apply(name, deps)
}
