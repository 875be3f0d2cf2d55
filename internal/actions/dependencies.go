package actions

import (
	"context"
	"time"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/input"
	"github.com/interutils/cli/internal/pkgcheck"
	"github.com/interutils/cli/internal/usage"
)

// Deps holds what the top-level menu actions need.
type Deps struct {
	Config         domain.ConfigProvider
	Out            domain.Reporter
	Clear          func()
	Now            func() time.Time
	PackageVersion func(ctx context.Context, name string) (string, error)
	Version        func() string
	// Interrupts cancels a running package check on ^C. Nil disables that.
	Interrupts *input.Interrupts
}

// DefaultDeps builds the dependencies of the top-level menu actions.
func DefaultDeps(cfg domain.ConfigProvider, out domain.Reporter, clear func(), version string, interrupts *input.Interrupts) Deps {
	return Deps{
		Config:         cfg,
		Out:            out,
		Clear:          clear,
		Now:            time.Now,
		PackageVersion: pkgcheck.Version,
		Version:        func() string { return version },
		Interrupts:     interrupts,
	}
}

func bind(fn func([]string, Deps) error, deps Deps) dispatchers.Action {
	return func(args []string) error {
		return usage.Report(deps.Out, fn(args, deps))
	}
}
