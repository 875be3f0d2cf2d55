package input

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStream_ReadLine(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader("first\r\n\nlast"), &out)

	line, err := s.ReadLine(".iu->")
	require.NoError(t, err)
	require.Equal(t, "first", line)

	line, err = s.ReadLine("[>>>] ")
	require.NoError(t, err)
	require.Equal(t, "", line)

	line, err = s.ReadLine("> ")
	require.NoError(t, err)
	require.Equal(t, "last", line)

	_, err = s.ReadLine("> ")
	require.ErrorIs(t, err, io.EOF)

	require.Equal(t, ".iu->[>>>] > > ", out.String())
}

func TestStream_NilOutDiscardsMarker(t *testing.T) {
	s := NewStream(strings.NewReader("x\n"), nil)

	line, err := s.ReadLine("marker")
	require.NoError(t, err)
	require.Equal(t, "x", line)
}

func TestIsInterrupt(t *testing.T) {
	require.True(t, IsInterrupt(ErrInterrupted))
	require.True(t, IsInterrupt(fmt.Errorf("menu: %w", ErrInterrupted)))
	require.False(t, IsInterrupt(io.EOF))
	require.False(t, IsInterrupt(nil))
}

func TestStream_InterruptWhileWaiting(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	sig := make(chan os.Signal, 1)
	s := NewStream(r, nil, WithInterrupts(NewInterrupts(sig)))

	sig <- os.Interrupt
	_, err := s.ReadLine("> ")
	require.ErrorIs(t, err, ErrInterrupted)

	// the read started before the interrupt still delivers its line
	go func() { _, _ = io.WriteString(w, "kept\n") }()
	line, err := s.ReadLine("> ")
	require.NoError(t, err)
	require.Equal(t, "kept", line)
}

func TestInterrupts_Context(t *testing.T) {
	sig := make(chan os.Signal, 1)
	i := NewInterrupts(sig)

	ctx, cancel := i.Context(context.Background())
	defer cancel()
	sig <- os.Interrupt
	<-ctx.Done()
	require.True(t, Interrupted(ctx))

	ctx, cancel = i.Context(context.Background())
	cancel()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
	require.False(t, Interrupted(ctx))
}

func TestInterrupts_NilIsInert(t *testing.T) {
	var i *Interrupts

	ctx, cancel := i.Context(context.Background())
	require.NoError(t, ctx.Err())
	cancel()
	require.False(t, Interrupted(ctx))
	require.NoError(t, i.Stop())
}
