// Package testutil holds fakes shared by package tests.
package testutil

import (
	"io"

	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/input"
)

// Step is one scripted answer: a line, or an error to return instead.
type Step struct {
	Line string
	Err  error
}

// Reader is a scripted domain.LineReader. Once the script is exhausted it
// returns io.EOF. Every marker it was asked to show is recorded.
type Reader struct {
	steps   []Step
	Markers []string
}

// Lines scripts a Reader that answers with lines in order.
func Lines(lines ...string) *Reader {
	r := &Reader{}
	for _, l := range lines {
		r.steps = append(r.steps, Step{Line: l})
	}
	return r
}

// Then appends further lines.
func (r *Reader) Then(lines ...string) *Reader {
	for _, l := range lines {
		r.steps = append(r.steps, Step{Line: l})
	}
	return r
}

// Interrupt appends a ^C.
func (r *Reader) Interrupt() *Reader {
	r.steps = append(r.steps, Step{Err: input.ErrInterrupted})
	return r
}

// Fail appends an arbitrary read error.
func (r *Reader) Fail(err error) *Reader {
	r.steps = append(r.steps, Step{Err: err})
	return r
}

// ReadLine implements domain.LineReader.
func (r *Reader) ReadLine(marker string) (string, error) {
	r.Markers = append(r.Markers, marker)
	if len(r.steps) == 0 {
		return "", io.EOF
	}
	step := r.steps[0]
	r.steps = r.steps[1:]
	return step.Line, step.Err
}

// Remaining reports how many scripted steps were not consumed.
func (r *Reader) Remaining() int {
	return len(r.steps)
}

var _ domain.LineReader = (*Reader)(nil)
