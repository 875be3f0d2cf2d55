package dispatchers

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/log"
	"github.com/interutils/cli/internal/usage"
	"github.com/interutils/cli/internal/ui/style"
)

// Dispatcher reads commands from in and reports through out.
type Dispatcher struct {
	in  domain.LineReader
	out domain.Reporter
}

// New returns a Dispatcher.
func New(in domain.LineReader, out domain.Reporter) *Dispatcher {
	return &Dispatcher{in: in, out: out}
}

// Run serves the menu of root until the user enters an empty line or input
// ends, then returns nil so the caller's menu resumes.
//
// Each line is split on whitespace. A line containing the token "help"
// lists root's children. Otherwise the first token selects a child: a leaf
// runs with the remaining tokens as arguments, a branch opens its own menu
// labelled label + "." + its name. Unknown commands, blank lines included,
// are reported once.
//
// Errors returned by actions, and input.ErrInterrupted, are returned
// unchanged and so unwind every nested menu.
func (d *Dispatcher) Run(label string, root *Node) error {
	if root == nil || root.kind != KindBranch {
		return fmt.Errorf("dispatchers: %q is not a menu", label)
	}

	marker := style.Prompt("." + label + "->")
	for {
		line, err := d.in.ReadLine(marker)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			d.out.Report(domain.SeverityCaution, usage.UnknownCommand("").Error())
			continue
		}
		if slices.Contains(tokens, "help") {
			d.printHelp(root)
			continue
		}

		cmd, args := tokens[0], tokens[1:]
		child, ok := root.Child(cmd)
		if !ok {
			suggestions := FindSimilarCommands(cmd, root, defaultSuggestionsCount)
			d.out.Report(domain.SeverityCaution, usage.UnknownCommand(cmd, suggestions...).Error())
			continue
		}

		switch child.kind {
		case KindLeaf:
			log.Debug("dispatch: %s.%s %v", label, cmd, args)
			if err := child.action(args); err != nil {
				return err
			}
		case KindBranch:
			if err := d.Run(label+"."+child.Name(), child); err != nil {
				return err
			}
		}
		d.out.Line("")
	}
}
