package files

import (
	"fmt"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/usage"
)

func Volume(deps Deps) dispatchers.Action {
	return bind(volume, deps)
}

func Lines(deps Deps) dispatchers.Action {
	return bind(lines, deps)
}

func Image(deps Deps) dispatchers.Action {
	return bind(image, deps)
}

func volume(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("path", "volume <path>")
	}
	v, err := deps.FileVolume(args[0])
	if err != nil {
		return pathError(args[0], err)
	}
	deps.Out.Report(domain.SeverityInfo, v.Describe())
	return nil
}

func lines(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("path", "lines <path>")
	}
	n, err := deps.CountLines(args[0])
	if err != nil {
		return pathError(args[0], err)
	}
	deps.Out.Report(domain.SeverityInfo, fmt.Sprintf("%s: %d lines", args[0], n))
	return nil
}

func image(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("path", "image <path>")
	}
	kind, err := deps.ImageKind(args[0])
	if err != nil {
		return pathError(args[0], err)
	}
	if kind == "" {
		deps.Out.Report(domain.SeverityCaution, args[0]+" is not an image")
		return nil
	}
	deps.Out.Report(domain.SeveritySuccess, args[0]+" is a "+kind+" image")
	return nil
}
