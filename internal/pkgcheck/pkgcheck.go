// Package pkgcheck asks the OS package manager whether a package is installed.
package pkgcheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/interutils/cli/internal/log"
)

var (
	// ErrNoPackageManager is returned when neither pacman nor apt is available.
	ErrNoPackageManager = errors.New("pkgcheck: no supported package manager")
	// ErrInvalidName is returned for names that could be mistaken for options.
	ErrInvalidName = errors.New("pkgcheck: invalid package name")
)

// Deps holds the process hooks used by Version.
type Deps struct {
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DefaultDeps uses the real PATH and process execution.
func DefaultDeps() Deps {
	return Deps{
		LookPath: exec.LookPath,
		Output:   output,
	}
}

func output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	detach(cmd)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		log.Debug("pkgcheck: command failed: %s %s: %v", name, strings.Join(args, " "), err)
		return nil, err
	}
	return stdout.Bytes(), nil
}

// Version returns the installed version of the package name, or "" when it
// is not installed. pacman is asked first; apt is the fallback when pacman
// is not on PATH.
func (d Deps) Version(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "-") || strings.ContainsAny(name, " \t\n") {
		return "", ErrInvalidName
	}

	if pacman, err := d.LookPath("pacman"); err == nil {
		out, err := d.Output(ctx, pacman, "-Q", name)
		if err != nil {
			// pacman exits 1 for unknown packages
			return "", ctx.Err()
		}
		return secondField(string(out)), nil
	}

	apt, err := d.LookPath("apt")
	if err != nil {
		return "", ErrNoPackageManager
	}
	out, err := d.Output(ctx, apt, "list", "--installed", "-qq", name)
	if err != nil {
		return "", fmt.Errorf("apt list: %w", err)
	}
	return aptVersion(string(out), name), nil
}

// Version runs Deps.Version with the system commands.
func Version(ctx context.Context, name string) (string, error) {
	return DefaultDeps().Version(ctx, name)
}

// secondField returns the version from a "name version" line.
func secondField(out string) string {
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// aptVersion picks the line for name from `apt list` output such as
// "bash/jammy,now 5.1-6ubuntu1 amd64 [installed]".
func aptVersion(out, name string) string {
	for _, line := range strings.Split(out, "\n") {
		pkg, _, ok := strings.Cut(line, "/")
		if !ok || pkg != name {
			continue
		}
		return secondField(line)
	}
	return ""
}
