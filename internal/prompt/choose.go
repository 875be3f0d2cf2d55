// Package prompt implements numbered choice lists and simple questions on
// top of a line reader and a reporter.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/input"
	"github.com/interutils/cli/internal/log"
	"github.com/interutils/cli/internal/ui/style"
)

// Sentinel outcomes of Choose. Valid selections are always >= 0.
const (
	// Invalid means the answer was not a number in range.
	Invalid = -1
	// Aborted means input was interrupted (or ended).
	Aborted = -2
	// Cancelled is a "no default" value for callers that need an empty
	// answer to be distinguishable from Invalid.
	Cancelled = -3
)

// ChoiceMarker is shown when reading the answer to a choice list.
const ChoiceMarker = "[>>>] "

// Prompter asks questions through a reader and a reporter.
type Prompter struct {
	in  domain.LineReader
	out domain.Reporter
}

// New returns a Prompter reading from in and printing to out.
func New(in domain.LineReader, out domain.Reporter) *Prompter {
	return &Prompter{in: in, out: out}
}

// Choose prints question followed by the options numbered from 1 and reads
// one answer.
//
// It returns defaultIndex for an empty answer (negative values included),
// the zero-based index for an answer in 1..len(options), Invalid for any
// other answer and Aborted when reading was interrupted. The option at
// defaultIndex is marked with a bracketed ordinal.
//
// Choose panics if options is empty.
func (p *Prompter) Choose(options []string, question string, defaultIndex int) int {
	if len(options) == 0 {
		panic("prompt: Choose called without options")
	}

	p.out.Report(domain.SeverityQuestion, question)
	for i, option := range options {
		p.out.Line(style.Warning(formatOption(i, option, i == defaultIndex)))
	}

	answer, err := p.in.ReadLine(style.Warning(ChoiceMarker))
	if err != nil {
		if !input.IsInterrupt(err) && !errors.Is(err, io.EOF) {
			log.Warn("prompt: read failed: %v", err)
		}
		return Aborted
	}
	return resolve(answer, len(options), defaultIndex)
}

func formatOption(i int, option string, isDefault bool) string {
	if isDefault {
		return fmt.Sprintf("\t[%d]. %s", i+1, option)
	}
	return fmt.Sprintf("\t %d.  %s", i+1, option)
}

func resolve(answer string, count, defaultIndex int) int {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return defaultIndex
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > count {
		return Invalid
	}
	return n - 1
}
