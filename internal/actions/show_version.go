package actions

import "github.com/interutils/cli/internal/dispatchers"

func ShowVersion(deps Deps) dispatchers.Action {
	return bind(showVersion, deps)
}

func showVersion(_ []string, deps Deps) error {
	deps.Out.Line("iu version " + deps.Version())
	return nil
}
