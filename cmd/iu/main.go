package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/interutils/cli/internal/cli"
	"github.com/interutils/cli/internal/input"
	"github.com/interutils/cli/internal/ui/style"
	"github.com/interutils/cli/internal/usage"
)

const exitInterrupted = 130

func main() {
	cmd := cli.NewRootCommand(cli.Streams{})
	cmd.SetArgs(os.Args[1:])
	os.Exit(exitCode(cmd.Execute(), os.Stdout, os.Stderr))
}

// exitCode reports err and maps it to the process exit status.
func exitCode(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	if input.IsInterrupt(err) {
		_, _ = fmt.Fprintln(stdout, "\n"+style.Warning("[!]")+" Interrupted!")
		return exitInterrupted
	}

	_, _ = fmt.Fprintln(stderr, style.Error("[X]")+" "+err.Error())
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}
