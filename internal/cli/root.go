// Package cli builds the iu command line: the interactive menu tree and the
// cobra commands that start it.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/interutils/cli/internal/actions/files"
	"github.com/interutils/cli/internal/app"
	"github.com/interutils/cli/internal/browser"
	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/input"
	"github.com/interutils/cli/internal/prompt"
)

// ErrNothingSelected is returned by "iu browse" when no file was picked.
var ErrNothingSelected = errors.New("no file selected")

// Streams replaces the process streams. Nil fields fall back to os.Stdin,
// os.Stdout and SIGINT.
type Streams struct {
	In         io.Reader
	Out        io.Writer
	Interrupts *input.Interrupts
}

// NewRootCommand returns the iu command. Without a subcommand it serves the
// interactive menu until the user leaves it.
func NewRootCommand(streams Streams) *cobra.Command {
	opts := &app.Options{Stdin: streams.In, Stdout: streams.Out, Interrupts: streams.Interrupts}

	cmd := &cobra.Command{
		Use:           "iu",
		Short:         "Interactive terminal utilities",
		Long:          "iu serves a nested command menu for file, network and system chores.\nType help at any prompt to list its commands, an empty line to go back.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*opts, func(a *app.App) error {
				return dispatchers.New(a.Input, a.Output).Run(RootName, BuildTree(a))
			})
		},
	}
	if streams.Out != nil {
		cmd.SetOut(streams.Out)
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default $IU_CONFIG or <user config dir>/interutils/config.json)")
	flags.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	flags.BoolVar(&opts.Verbose, "verbose", false, "show verbose [~] lines")

	cmd.AddCommand(newBrowseCommand(opts), newVersionCommand())
	return cmd
}

func newBrowseCommand(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [dir]",
		Short: "Pick a file and print its path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withApp(*opts, func(a *app.App) error {
				root, err := files.Root(a.Config, args)
				if err != nil {
					return err
				}
				prompter := prompt.New(a.Input, a.Output)
				path, err := browser.New(prompter, a.Output).Browse(root)
				if err != nil {
					return err
				}
				if path == "" {
					return ErrNothingSelected
				}
				a.Output.Line(path)
				return nil
			})
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show iu version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "iu version %s\n", app.Version)
		},
	}
}

func withApp(opts app.Options, fn func(*app.App) error) error {
	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	return fn(a)
}
