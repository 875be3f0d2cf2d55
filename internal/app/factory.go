// Package app wires config, logging, styling and terminal I/O for one iu
// process.
package app

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/interutils/cli/internal/config"
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/input"
	"github.com/interutils/cli/internal/log"
	"github.com/interutils/cli/internal/paths"
	"github.com/interutils/cli/internal/ui"
	"github.com/interutils/cli/internal/ui/style"
)

// Version is overridden at build time with
// -ldflags "-X github.com/interutils/cli/internal/app.Version=v1.2.3".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// ConfigPath overrides the config file location.
	ConfigPath string

	NoColor bool
	Verbose bool

	// Stdin and Stdout replace the process streams. A replaced Stdin is
	// always read as a plain stream.
	Stdin  io.Reader
	Stdout io.Writer

	// Interrupts replaces SIGINT handling. Nil catches SIGINT for the
	// lifetime of the App.
	Interrupts *input.Interrupts
}

// App is a wired Application plus the concrete pieces callers need.
type App struct {
	*domain.Application

	Store      *config.Store
	Writer     *ui.Writer
	Interrupts *input.Interrupts

	closers []func() error
}

// New creates an App with all dependencies wired up. Logging failures are
// not fatal; a config that cannot be read or written is.
func New(opts Options) (*App, error) {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = paths.ConfigFilePath()
	}

	colorEnabled := !opts.NoColor && isTerminal(stdout)
	style.Init(colorEnabled, nil)

	writer := ui.NewWriterTo(stdout, ui.WithVerbose(opts.Verbose))

	store, err := config.Open(configPath, domain.DefaultConfig(),
		config.WithReporter(writer), config.WithLock())
	if err != nil {
		return nil, err
	}
	values := store.All()
	style.Init(colorEnabled, values)
	writer.SetVerbose(opts.Verbose || values["verbose"] == "true")

	a := &App{Store: store, Writer: writer}

	var logger domain.Logger = log.NopLogger{}
	if values["enable_log"] != "false" {
		logPath := paths.LogFileNextTo(configPath)
		if err := log.Init(logPath, log.ParseLevel(values["log_level"])); err != nil {
			writer.Report(domain.SeverityVerbose, "Logging disabled: "+err.Error())
		} else {
			logger = log.GetLogger()
			a.closers = append(a.closers, log.Close)
			log.Info("iu %s started, config %s", Version, configPath)
		}
	}

	a.Interrupts = opts.Interrupts
	if a.Interrupts == nil {
		a.Interrupts = input.NotifyInterrupts()
		a.closers = append(a.closers, a.Interrupts.Stop)
	}

	var reader domain.LineReader
	switch {
	case opts.Stdin != nil:
		reader = input.NewStream(opts.Stdin, stdout, input.WithInterrupts(a.Interrupts))
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		t := input.NewTerminal(a.Interrupts)
		a.closers = append(a.closers, t.Close)
		reader = t
	default:
		reader = input.NewStream(os.Stdin, stdout, input.WithInterrupts(a.Interrupts))
	}

	a.Application = &domain.Application{
		Config: store,
		Logger: logger,
		Output: writer,
		Input:  reader,
	}
	return a, nil
}

// Close restores the terminal and SIGINT handling and closes the log, in
// reverse order of setup.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
