package actions

import (
	"context"
	"errors"
	"time"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/format"
	"github.com/interutils/cli/internal/input"
	"github.com/interutils/cli/internal/pkgcheck"
	"github.com/interutils/cli/internal/usage"
	"github.com/interutils/cli/internal/ui/style"
)

const packageTimeout = 15 * time.Second

func Date(deps Deps) dispatchers.Action {
	return bind(date, deps)
}

func Time(deps Deps) dispatchers.Action {
	return bind(clock, deps)
}

func Clear(deps Deps) dispatchers.Action {
	return bind(clearScreen, deps)
}

func Package(deps Deps) dispatchers.Action {
	return bind(pkg, deps)
}

func date(_ []string, deps Deps) error {
	setting, _ := deps.Config.Get("date_format")
	deps.Out.Report(domain.SeverityInfo, format.Date(deps.Now(), setting))
	return nil
}

func clock(_ []string, deps Deps) error {
	setting, _ := deps.Config.Get("time_format")
	deps.Out.Report(domain.SeverityInfo, format.Time(deps.Now(), setting))
	return nil
}

func clearScreen(_ []string, deps Deps) error {
	deps.Clear()
	return nil
}

// pkg reports the installed version of each named package.
func pkg(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("name", "pkg <name>...")
	}

	ctx, stop := deps.Interrupts.Context(context.Background())
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, packageTimeout)
	defer cancel()

	for _, name := range args {
		version, err := deps.PackageVersion(ctx, name)
		switch {
		case input.Interrupted(ctx):
			deps.Out.Report(domain.SeverityCaution, "Package check interrupted!")
			return nil
		case errors.Is(err, pkgcheck.ErrInvalidName):
			return usage.InvalidArgument(name, "not a package name")
		case errors.Is(err, pkgcheck.ErrNoPackageManager):
			deps.Out.Report(domain.SeverityError, "Neither pacman nor apt is available")
			return nil
		case err != nil:
			return err
		case version == "":
			deps.Out.Report(domain.SeverityCaution, name+" is not installed")
		default:
			deps.Out.Report(domain.SeveritySuccess, name+" "+style.Info(version))
		}
	}
	return nil
}
