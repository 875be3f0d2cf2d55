// Package netutil wraps the system ip and ping tools and validates MAC
// addresses.
package netutil

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/interutils/cli/internal/log"
)

// RunFunc runs an external command and returns its stdout. A non-zero exit
// status is reported as an error with an ExitCode method.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Tools runs network commands through Run.
type Tools struct {
	Run RunFunc
}

// DefaultTools runs the real system commands.
func DefaultTools() Tools {
	return Tools{Run: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	detach(cmd)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		log.Debug("netutil: command failed: %s %s: %v: %s",
			name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
		return nil, err
	}
	return stdout.Bytes(), nil
}

// exitedNonZero reports whether err is a command finishing with a failure
// status, as opposed to a command that could not run at all.
func exitedNonZero(err error) bool {
	var exit interface{ ExitCode() int }
	return errors.As(err, &exit) && exit.ExitCode() > 0
}
