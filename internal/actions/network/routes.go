package network

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/ui/style"
)

func Routes(deps Deps) dispatchers.Action {
	return bind(routes, deps)
}

func routes(_ []string, deps Deps) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	table, err := deps.Routes(ctx)
	if err != nil {
		return err
	}
	if table == nil {
		deps.Out.Report(domain.SeverityCaution, "No route!")
		return nil
	}

	deps.Out.Report(domain.SeverityInfo,
		fmt.Sprintf("Default gateway %s via %s", style.Info(table.Gateway), table.Interface))
	for _, dev := range slices.Sorted(maps.Keys(table.Subnets)) {
		s := table.Subnets[dev]
		line := fmt.Sprintf("  %-10s %s", s.Interface, s.Network)
		if s.IP != "" {
			line += " " + style.Muted("src") + " " + s.IP
		}
		deps.Out.Line(line)
	}
	return nil
}
