package prompt

import (
	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/ui/style"
)

// Ask prints question and returns the raw answer, "" for a bare Enter.
// Interrupts and read errors are returned to the caller.
func (p *Prompter) Ask(question string) (string, error) {
	p.out.Report(domain.SeverityQuestion, question)
	return p.in.ReadLine(">")
}

// Pause waits for Enter. It returns false when the wait was interrupted.
// With cancellable set, the hint also mentions ^C.
func (p *Prompter) Pause(reason string, cancellable bool) bool {
	if reason == "" {
		reason = "continue"
	}
	msg := "Press " + style.Info("[ENTER]") + " to " + reason
	if cancellable {
		msg += ", " + style.Error("[^C]") + " to cancel"
	}
	p.out.Report(domain.SeverityQuestion, msg)

	_, err := p.in.ReadLine("")
	return err == nil
}

// Confirm asks a Yes/No question. An empty answer picks the default;
// invalid or interrupted answers count as No.
func (p *Prompter) Confirm(question string, defaultYes bool) bool {
	def := 1
	if defaultYes {
		def = 0
	}
	return p.Choose([]string{"Yes", "No"}, question, def) == 0
}
