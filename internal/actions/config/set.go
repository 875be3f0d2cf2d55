package config

import (
	"strings"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/usage"
)

func Set(deps Deps) dispatchers.Action {
	return bind(set, deps)
}

// set joins every argument after the key, so values may contain spaces.
func set(args []string, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("value", "set <key> <value>")
	}

	key := args[0]
	value := strings.Join(args[1:], " ")

	_, existed := deps.Config.Get(key)
	if err := deps.Config.Set(key, value); err != nil {
		return err
	}

	action := "Added"
	if existed {
		action = "Updated"
	}
	deps.Out.Report(domain.SeveritySuccess, action+" "+key+"="+value)

	if domain.LookupConfigKey(key) == nil {
		deps.Out.Report(domain.SeverityVerbose, key+" is not a known setting")
	}
	return nil
}
