package files

import (
	"os"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/usage"
)

const rootKey = "browse_root"

func Browse(deps Deps) dispatchers.Action {
	return bind(browse, deps)
}

func browse(args []string, deps Deps) error {
	root, err := Root(deps.Config, args)
	if err != nil {
		return err
	}

	path, err := deps.Browse(root)
	if err != nil {
		return pathError(root, err)
	}
	if path == "" {
		deps.Out.Report(domain.SeverityInfo, "No file selected")
		return nil
	}

	deps.Out.Report(domain.SeveritySuccess, path)
	return nil
}

// Root returns the directory browsing starts from: the first argument, the
// browse_root setting, or ".". Anything but an existing directory is a
// usage error.
func Root(cfg domain.ConfigProvider, args []string) (string, error) {
	root := "."
	if v, ok := cfg.Get(rootKey); ok && v != "" {
		root = v
	}
	if len(args) > 0 {
		root = args[0]
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", pathError(root, err)
	}
	if !info.IsDir() {
		return "", usage.InvalidPath(root, "not a directory")
	}
	return root, nil
}
