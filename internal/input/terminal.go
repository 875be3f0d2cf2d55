package input

import (
	"errors"

	"github.com/charmbracelet/x/ansi"
	"github.com/peterh/liner"

	"github.com/interutils/cli/internal/domain"
)

// Terminal reads lines from an interactive terminal with line editing.
// ^C aborts the current prompt instead of killing the process. No history
// is kept between prompts.
type Terminal struct {
	state      *liner.State
	interrupts *Interrupts
}

// NewTerminal puts the terminal under liner's control. Close must be called
// to restore the original terminal mode.
//
// While liner reads, ^C arrives as a key. An interrupt caught from i
// between prompts makes the next ReadLine fail with ErrInterrupted.
func NewTerminal(i *Interrupts) *Terminal {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &Terminal{state: state, interrupts: i}
}

// ReadLine shows marker and reads one edited line.
//
// liner measures the prompt by rune count, so escape sequences are removed
// from the marker before it is handed over.
func (t *Terminal) ReadLine(marker string) (string, error) {
	select {
	case <-t.interrupts.channel():
		return "", ErrInterrupted
	default:
	}
	line, err := t.state.Prompt(ansi.Strip(marker))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return line, nil
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	return t.state.Close()
}

var _ domain.LineReader = (*Terminal)(nil)
