// Package ui prints user-facing lines: severity-tagged reports, raw lines
// and screen control.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/ui/style"
)

// Writer implements domain.Reporter on top of an io.Writer.
type Writer struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
	quiet   bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithVerbose shows SeverityVerbose reports, which are hidden by default.
func WithVerbose(verbose bool) WriterOption {
	return func(w *Writer) {
		w.verbose = verbose
	}
}

// WithQuiet suppresses success, info and verbose reports.
// Cautions, errors, questions and headings are always shown.
func WithQuiet() WriterOption {
	return func(w *Writer) {
		w.quiet = true
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{out: out}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SetVerbose shows or hides SeverityVerbose reports from now on.
func (w *Writer) SetVerbose(verbose bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.verbose = verbose
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fmt.Fprintf(w.out, format, args...)
}

// Report prints "[glyph] text" with the glyph colored by severity.
// Headings are printed without a glyph, entirely in the header style.
func (w *Writer) Report(sev domain.Severity, text string) {
	if !w.shows(sev) {
		return
	}
	paint := style.For(sev)
	if sev == domain.SeverityHeading {
		w.Line(paint(text))
		return
	}
	w.Line(paint("["+sev.Glyph()+"]") + " " + text)
}

// Line prints text followed by a newline.
func (w *Writer) Line(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintln(w.out, text)
}

func (w *Writer) shows(sev domain.Severity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch sev {
	case domain.SeverityVerbose:
		return w.verbose && !w.quiet
	case domain.SeveritySuccess, domain.SeverityInfo:
		return !w.quiet
	default:
		return true
	}
}

// Clear erases the terminal screen.
func (w *Writer) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = io.WriteString(w.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
}

var _ domain.Reporter = (*Writer)(nil)
