package config

import (
	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/usage"
)

func Get(deps Deps) dispatchers.Action {
	return bind(get, deps)
}

func get(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key", "get <key>")
	}

	key := args[0]
	value, found := deps.Config.Get(key)
	if !found {
		return usage.InvalidArgument(key, "no such config key")
	}

	deps.Out.Line(value)
	return nil
}
