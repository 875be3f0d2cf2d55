package netutil

import (
	"context"
	"errors"
	"strconv"
)

// ErrInvalidCount is returned by Ping when fewer than one request is asked for.
var ErrInvalidCount = errors.New("netutil: ping count cannot be lower than 1")

// Ping sends count echo requests to host with `ping -c count -w timeout`
// and reports whether it answered. A host that does not answer is not an
// error; a missing ping binary or a cancelled ctx is.
func (t Tools) Ping(ctx context.Context, host string, count, timeout int) (bool, error) {
	if count < 1 {
		return false, ErrInvalidCount
	}
	if timeout < 1 {
		timeout = 1
	}

	_, err := t.Run(ctx, "ping", "-c", strconv.Itoa(count), "-w", strconv.Itoa(timeout), "--", host)
	switch {
	case err == nil:
		return true, nil
	case ctx.Err() != nil:
		return false, ctx.Err()
	case exitedNonZero(err):
		return false, nil
	default:
		return false, err
	}
}

// Ping runs Tools.Ping with the system commands.
func Ping(ctx context.Context, host string, count, timeout int) (bool, error) {
	return DefaultTools().Ping(ctx, host, count, timeout)
}
