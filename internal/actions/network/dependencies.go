package network

import (
	"context"
	"strconv"
	"time"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/input"
	"github.com/interutils/cli/internal/netutil"
	"github.com/interutils/cli/internal/usage"
)

// commandTimeout bounds `ip route`; ping gets its own timeout on top.
const commandTimeout = 10 * time.Second

type Deps struct {
	Config domain.ConfigProvider
	Out    domain.Reporter
	Routes func(ctx context.Context) (*netutil.RouteTable, error)
	Ping   func(ctx context.Context, host string, count, timeout int) (bool, error)
	// Interrupts cancels a running ping on ^C. Nil disables that.
	Interrupts *input.Interrupts
}

func DefaultDeps(cfg domain.ConfigProvider, out domain.Reporter, interrupts *input.Interrupts) Deps {
	tools := netutil.DefaultTools()
	return Deps{
		Config:     cfg,
		Out:        out,
		Routes:     tools.Routes,
		Ping:       tools.Ping,
		Interrupts: interrupts,
	}
}

func bind(fn func([]string, Deps) error, deps Deps) dispatchers.Action {
	return func(args []string) error {
		return usage.Report(deps.Out, fn(args, deps))
	}
}

// intSetting reads a positive integer setting, falling back to def when it
// is missing or malformed.
func intSetting(cfg domain.ConfigProvider, key string, def int) int {
	v, ok := cfg.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
