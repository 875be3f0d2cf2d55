package logs

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/ui/style"
	"github.com/interutils/cli/internal/usage"
)

const defaultLogLimit = 20

// View prints the last lines of the log file, 20 unless a count is given.
func View(deps Deps) dispatchers.Action {
	return bind(view, deps)
}

// Clear empties the log file after confirmation.
func Clear(deps Deps) dispatchers.Action {
	return bind(clearLog, deps)
}

func view(args []string, deps Deps) error {
	limit := defaultLogLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return usage.InvalidArgument(args[0], "count must be a positive number")
		}
		limit = n
	}

	logPath := deps.LogFilePath()
	content, err := deps.ReadFile(logPath)
	if errors.Is(err, fs.ErrNotExist) {
		deps.Out.Report(domain.SeverityInfo, "No log file found at "+logPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		deps.Out.Report(domain.SeverityInfo, "Log file is empty")
		return nil
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	for _, line := range lines {
		deps.Out.Line(colorizeLogLine(line))
	}
	return nil
}

func clearLog(_ []string, deps Deps) error {
	if !deps.Confirm("Clear "+deps.LogFilePath()+"?", false) {
		deps.Out.Report(domain.SeverityInfo, "Log file kept")
		return nil
	}
	if err := deps.WriteFile(deps.LogFilePath(), nil, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}
	deps.Out.Report(domain.SeveritySuccess, "Log file cleared")
	return nil
}

// colorizeLogLine paints a "[timestamp] LEVEL session: message" line by level.
func colorizeLogLine(line string) string {
	switch {
	case strings.Contains(line, "] ERROR "):
		return style.Error(line)
	case strings.Contains(line, "] WARN "):
		return style.Warning(line)
	case strings.Contains(line, "] DEBUG "):
		return style.Muted(line)
	default:
		return line
	}
}
