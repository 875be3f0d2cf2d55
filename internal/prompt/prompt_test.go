package prompt

import (
	"errors"
	"io"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/input"
	"github.com/interutils/cli/internal/testutil"
	"github.com/interutils/cli/internal/ui/style"
)

func newPrompter(t *testing.T, in *testutil.Reader) (*Prompter, *testutil.Reporter) {
	t.Helper()
	style.Init(false, nil)
	out := &testutil.Reporter{}
	return New(in, out), out
}

var fruits = []string{"apple", "banana", "cherry"}

func TestChoose_EmptyInputReturnsDefaultVerbatim(t *testing.T) {
	for _, def := range []int{0, 2, Invalid, Aborted, Cancelled, -42} {
		t.Run(strconv.Itoa(def), func(t *testing.T) {
			p, _ := newPrompter(t, testutil.Lines(""))
			require.Equal(t, def, p.Choose(fruits, "Pick:", def))
		})
	}
}

func TestChoose_ValidNumbers(t *testing.T) {
	for n := 1; n <= len(fruits); n++ {
		p, _ := newPrompter(t, testutil.Lines(strconv.Itoa(n)))
		require.Equal(t, n-1, p.Choose(fruits, "Pick:", 0))
	}

	p, _ := newPrompter(t, testutil.Lines("  2 "))
	require.Equal(t, 1, p.Choose(fruits, "Pick:", 0))
}

func TestChoose_InvalidAnswers(t *testing.T) {
	for _, answer := range []string{"0", "4", "-1", "two", "1.5", "1 2"} {
		t.Run(answer, func(t *testing.T) {
			p, _ := newPrompter(t, testutil.Lines(answer))
			require.Equal(t, Invalid, p.Choose(fruits, "Pick:", 0))
		})
	}
}

func TestChoose_InterruptAndEOFAbort(t *testing.T) {
	p, _ := newPrompter(t, (&testutil.Reader{}).Interrupt())
	require.Equal(t, Aborted, p.Choose(fruits, "Pick:", 0))

	p, _ = newPrompter(t, testutil.Lines())
	require.Equal(t, Aborted, p.Choose(fruits, "Pick:", 0))

	p, _ = newPrompter(t, (&testutil.Reader{}).Fail(errors.New("tty gone")))
	require.Equal(t, Aborted, p.Choose(fruits, "Pick:", 0))
}

func TestChoose_SignalWhileReadingStream(t *testing.T) {
	style.Init(false, nil)
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	sig := make(chan os.Signal, 1)
	in := input.NewStream(r, nil, input.WithInterrupts(input.NewInterrupts(sig)))
	p := New(in, &testutil.Reporter{})

	sig <- os.Interrupt
	require.Equal(t, Aborted, p.Choose(fruits, "Pick:", 0))
}

func TestChoose_PanicsWithoutOptions(t *testing.T) {
	p, _ := newPrompter(t, testutil.Lines("1"))
	require.Panics(t, func() { p.Choose(nil, "Pick:", 0) })
	require.Panics(t, func() { p.Choose([]string{}, "Pick:", -1) })
}

func TestChoose_Rendering(t *testing.T) {
	in := testutil.Lines("1")
	p, out := newPrompter(t, in)

	p.Choose(fruits, "Pick a fruit:", 1)

	require.Equal(t, "[?] Pick a fruit:\n"+
		"\t 1.  apple\n"+
		"\t[2]. banana\n"+
		"\t 3.  cherry\n", out.Transcript())
	require.Equal(t, []string{ChoiceMarker}, in.Markers)
}

func TestChoose_NegativeDefaultMarksNothing(t *testing.T) {
	p, out := newPrompter(t, testutil.Lines(""))

	p.Choose(fruits, "Pick:", Cancelled)

	for _, line := range out.RawLines() {
		require.NotContains(t, line, "[")
	}
}

func TestChoose_ReadsExactlyOneLine(t *testing.T) {
	in := testutil.Lines("x", "2")
	p, _ := newPrompter(t, in)

	require.Equal(t, Invalid, p.Choose(fruits, "Pick:", 0))
	require.Equal(t, 1, in.Remaining())
}

func TestAsk(t *testing.T) {
	p, out := newPrompter(t, testutil.Lines("Bob", ""))

	answer, err := p.Ask("Name?")
	require.NoError(t, err)
	require.Equal(t, "Bob", answer)

	answer, err = p.Ask("Again?")
	require.NoError(t, err)
	require.Empty(t, answer)

	require.Equal(t, []string{"Name?", "Again?"}, out.Texts(domain.SeverityQuestion))

	p, _ = newPrompter(t, (&testutil.Reader{}).Interrupt())
	_, err = p.Ask("Name?")
	require.ErrorIs(t, err, input.ErrInterrupted)
}

func TestPause(t *testing.T) {
	p, out := newPrompter(t, testutil.Lines(""))
	require.True(t, p.Pause("", true))
	require.Equal(t, []string{"Press [ENTER] to continue, [^C] to cancel"}, out.Texts(domain.SeverityQuestion))

	p, out = newPrompter(t, (&testutil.Reader{}).Interrupt())
	require.False(t, p.Pause("exit", false))
	require.Equal(t, []string{"Press [ENTER] to exit"}, out.Texts(domain.SeverityQuestion))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		answer     *testutil.Reader
		defaultYes bool
		want       bool
	}{
		{"yes", testutil.Lines("1"), false, true},
		{"no", testutil.Lines("2"), true, false},
		{"empty takes default yes", testutil.Lines(""), true, true},
		{"empty takes default no", testutil.Lines(""), false, false},
		{"invalid is no", testutil.Lines("maybe"), true, false},
		{"interrupt is no", (&testutil.Reader{}).Interrupt(), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newPrompter(t, tt.answer)
			require.Equal(t, tt.want, p.Confirm("Sure?", tt.defaultYes))
		})
	}
}
