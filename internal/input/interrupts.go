package input

import (
	"context"
	"errors"
	"os"
	"os/signal"
)

// Interrupts turns SIGINT into a value delivered to whichever reader or
// action is waiting for it. A signal that arrives while nothing waits is
// kept for the next waiter.
type Interrupts struct {
	C    <-chan os.Signal
	stop func()
}

// NotifyInterrupts catches SIGINT until Stop is called. The process is no
// longer killed by ^C while it is installed.
func NotifyInterrupts() *Interrupts {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return &Interrupts{C: ch, stop: func() { signal.Stop(ch) }}
}

// NewInterrupts delivers values sent on ch as interrupts.
func NewInterrupts(ch <-chan os.Signal) *Interrupts {
	return &Interrupts{C: ch, stop: func() {}}
}

// Stop restores the default SIGINT behaviour.
func (i *Interrupts) Stop() error {
	if i != nil {
		i.stop()
	}
	return nil
}

// Context returns a child of parent that is cancelled with cause
// ErrInterrupted when an interrupt arrives before cancel is called.
// A nil Interrupts only adds cancellation.
func (i *Interrupts) Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	if i != nil && i.C != nil {
		go func() {
			select {
			case <-i.C:
				cancel(ErrInterrupted)
			case <-ctx.Done():
			}
		}()
	}
	return ctx, func() { cancel(context.Canceled) }
}

// Interrupted reports whether ctx was cancelled by an interrupt.
func Interrupted(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), ErrInterrupted)
}

func (i *Interrupts) channel() <-chan os.Signal {
	if i == nil {
		return nil
	}
	return i.C
}
