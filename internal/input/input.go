// Package input provides line readers for interactive prompts.
//
// Readers return "" for a bare Enter, ErrInterrupted when the user presses
// ^C and io.EOF at end of input. Trailing "\r\n" is never part of a line.
package input

import "errors"

// ErrInterrupted is returned by ReadLine when input capture was interrupted.
var ErrInterrupted = errors.New("input: interrupted")

// IsInterrupt reports whether err means the user interrupted input.
func IsInterrupt(err error) bool {
	return errors.Is(err, ErrInterrupted)
}
