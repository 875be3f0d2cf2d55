package logs

import (
	"os"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/usage"
)

type Deps struct {
	Out         domain.Reporter
	LogFilePath func() string
	ReadFile    func(string) ([]byte, error)
	WriteFile   func(string, []byte, os.FileMode) error
	// Confirm asks a yes/no question before destructive actions.
	Confirm func(question string, defaultYes bool) bool
}

// DefaultDeps reads and truncates the log file found at logPath.
func DefaultDeps(out domain.Reporter, logPath string, confirm func(string, bool) bool) Deps {
	return Deps{
		Out:         out,
		LogFilePath: func() string { return logPath },
		ReadFile:    os.ReadFile,
		WriteFile:   os.WriteFile,
		Confirm:     confirm,
	}
}

func bind(fn func([]string, Deps) error, deps Deps) dispatchers.Action {
	return func(args []string) error {
		return usage.Report(deps.Out, fn(args, deps))
	}
}
