package testutil

import (
	"strings"

	"github.com/interutils/cli/internal/domain"
)

// Entry is one recorded output line. Raw lines have Raw set.
type Entry struct {
	Severity domain.Severity
	Text     string
	Raw      bool
}

// Reporter records everything reported to it.
type Reporter struct {
	Entries []Entry
}

// Report implements domain.Reporter.
func (r *Reporter) Report(sev domain.Severity, text string) {
	r.Entries = append(r.Entries, Entry{Severity: sev, Text: text})
}

// Line implements domain.Reporter.
func (r *Reporter) Line(text string) {
	r.Entries = append(r.Entries, Entry{Text: text, Raw: true})
}

// Texts returns the text of every report with the given severity.
func (r *Reporter) Texts(sev domain.Severity) []string {
	var out []string
	for _, e := range r.Entries {
		if !e.Raw && e.Severity == sev {
			out = append(out, e.Text)
		}
	}
	return out
}

// RawLines returns every line printed through Line.
func (r *Reporter) RawLines() []string {
	var out []string
	for _, e := range r.Entries {
		if e.Raw {
			out = append(out, e.Text)
		}
	}
	return out
}

// Transcript renders all entries the way ui.Writer prints them without color.
func (r *Reporter) Transcript() string {
	var b strings.Builder
	for _, e := range r.Entries {
		switch {
		case e.Raw:
			b.WriteString(e.Text)
		case e.Severity == domain.SeverityHeading:
			b.WriteString(e.Text)
		default:
			b.WriteString("[" + e.Severity.Glyph() + "] " + e.Text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Reset drops all recorded entries.
func (r *Reporter) Reset() {
	r.Entries = nil
}

var _ domain.Reporter = (*Reporter)(nil)
