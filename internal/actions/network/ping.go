package network

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/input"
	"github.com/interutils/cli/internal/netutil"
	"github.com/interutils/cli/internal/usage"
)

func Ping(deps Deps) dispatchers.Action {
	return bind(ping, deps)
}

// ping takes the count from its second argument or ping_count, and the
// reply timeout in seconds from ping_timeout.
func ping(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("host", "ping <host> [count]")
	}
	host := args[0]

	count := intSetting(deps.Config, "ping_count", 1)
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return usage.InvalidArgument(args[1], "count must be a number")
		}
		count = n
	}
	timeout := intSetting(deps.Config, "ping_timeout", 1)

	ctx, stop := deps.Interrupts.Context(context.Background())
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, commandTimeout+time.Duration(timeout)*time.Second)
	defer cancel()

	up, err := deps.Ping(ctx, host, count, timeout)
	if input.Interrupted(ctx) {
		deps.Out.Report(domain.SeverityCaution, "Ping interrupted!")
		return nil
	}
	if errors.Is(err, netutil.ErrInvalidCount) {
		return usage.InvalidArgument(strconv.Itoa(count), "count cannot be lower than 1")
	}
	if err != nil {
		return err
	}

	if up {
		deps.Out.Report(domain.SeveritySuccess, host+" is up")
	} else {
		deps.Out.Report(domain.SeverityCaution, host+" is down")
	}
	return nil
}
