package config

import (
	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/usage"
)

type Deps struct {
	Config domain.ConfigProvider
	Out    domain.Reporter
}

// bind turns an action body into a menu action that reports usage errors
// instead of returning them.
func bind(fn func([]string, Deps) error, deps Deps) dispatchers.Action {
	return func(args []string) error {
		return usage.Report(deps.Out, fn(args, deps))
	}
}
