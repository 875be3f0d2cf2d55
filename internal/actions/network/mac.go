package network

import (
	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/netutil"
	"github.com/interutils/cli/internal/usage"
)

func MAC(deps Deps) dispatchers.Action {
	return bind(mac, deps)
}

func mac(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("address", "mac <address>")
	}
	if netutil.IsMAC(args[0]) {
		deps.Out.Report(domain.SeveritySuccess, args[0]+" is a valid MAC address")
		return nil
	}
	deps.Out.Report(domain.SeverityCaution, args[0]+" is not a MAC address")
	return nil
}
