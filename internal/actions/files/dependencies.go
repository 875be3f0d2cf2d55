package files

import (
	"errors"
	"io/fs"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/fsutil"
	"github.com/interutils/cli/internal/usage"
)

type Deps struct {
	Config domain.ConfigProvider
	Out    domain.Reporter
	// Browse runs the interactive file picker from root.
	Browse     func(root string) (string, error)
	FileVolume func(path string) (fsutil.Volume, error)
	CountLines func(path string) (int, error)
	ImageKind  func(path string) (string, error)
}

// DefaultDeps wires the fsutil helpers around the given collaborators.
func DefaultDeps(cfg domain.ConfigProvider, out domain.Reporter, browse func(string) (string, error)) Deps {
	return Deps{
		Config:     cfg,
		Out:        out,
		Browse:     browse,
		FileVolume: fsutil.FileVolume,
		CountLines: fsutil.CountLines,
		ImageKind:  fsutil.ImageKind,
	}
}

func bind(fn func([]string, Deps) error, deps Deps) dispatchers.Action {
	return func(args []string) error {
		return usage.Report(deps.Out, fn(args, deps))
	}
}

// pathError turns a filesystem error on a user-supplied path into a usage
// error, since a typo there should not end the menu.
func pathError(path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return usage.InvalidPath(path, pe.Err.Error())
	}
	return usage.InvalidPath(path, err.Error())
}
