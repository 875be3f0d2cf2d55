package config

import (
	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/usage"
)

func Unset(deps Deps) dispatchers.Action {
	return bind(unset, deps)
}

func unset(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key", "unset <key>")
	}

	key := args[0]
	removed, err := deps.Config.Unset(key)
	if err != nil {
		return err
	}
	if !removed {
		deps.Out.Report(domain.SeverityCaution, key+" was not set")
		return nil
	}

	deps.Out.Report(domain.SeveritySuccess, "Removed "+key)
	return nil
}
