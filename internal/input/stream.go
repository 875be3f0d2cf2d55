package input

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/interutils/cli/internal/domain"
)

// Stream reads lines from a non-interactive source such as a pipe or file.
// The marker is echoed to out so transcripts stay readable.
type Stream struct {
	r          *bufio.Reader
	out        io.Writer
	interrupts *Interrupts
	pending    chan readResult
}

type readResult struct {
	line string
	err  error
}

// StreamOption configures a Stream.
type StreamOption func(*Stream)

// WithInterrupts makes ReadLine return ErrInterrupted when i fires while
// it waits. The interrupted read is not lost: its line is returned by the
// next ReadLine.
func WithInterrupts(i *Interrupts) StreamOption {
	return func(s *Stream) {
		s.interrupts = i
	}
}

// NewStream returns a Stream reading from r and writing markers to out.
// A nil out discards markers.
func NewStream(r io.Reader, out io.Writer, opts ...StreamOption) *Stream {
	if out == nil {
		out = io.Discard
	}
	s := &Stream{r: bufio.NewReader(r), out: out}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadLine writes marker and reads up to the next newline.
// A final line without a newline is returned before io.EOF.
func (s *Stream) ReadLine(marker string) (string, error) {
	if marker != "" {
		_, _ = io.WriteString(s.out, marker)
	}
	if s.interrupts == nil {
		return finish(s.read())
	}

	if s.pending == nil {
		s.pending = make(chan readResult, 1)
		go func(ch chan<- readResult) {
			ch <- s.read()
		}(s.pending)
	}
	select {
	case res := <-s.pending:
		s.pending = nil
		return finish(res)
	case <-s.interrupts.channel():
		return "", ErrInterrupted
	}
}

func (s *Stream) read() readResult {
	line, err := s.r.ReadString('\n')
	return readResult{line: line, err: err}
}

func finish(res readResult) (string, error) {
	if res.err != nil {
		if errors.Is(res.err, io.EOF) && res.line != "" {
			return trimEOL(res.line), nil
		}
		return "", res.err
	}
	return trimEOL(res.line), nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

var _ domain.LineReader = (*Stream)(nil)
