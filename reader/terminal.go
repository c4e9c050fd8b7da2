package reader

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/ember-lang/ember/log"
)

// Terminal reads lines from a file (normally stdin), prompting when the
// input is a TTY. A pump goroutine owns the underlying scanner; ReadLine
// multiplexes it against interrupt signals and context cancellation.
type Terminal struct {
	lines      <-chan lineEvent
	interrupts chan os.Signal
	out        io.Writer
	prompt     string
	isTTY      bool

	historyPath string
	logger      *log.Logger
}

type lineEvent struct {
	text string
	err  error
}

// NewTerminal creates a terminal line source. historyPath may be empty to
// disable history. The prompt is written to out before each read when the
// input is a TTY.
func NewTerminal(in *os.File, out io.Writer, prompt, historyPath string, logger *log.Logger) *Terminal {
	lines := make(chan lineEvent)
	go pump(in, lines)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)

	return &Terminal{
		lines:       lines,
		interrupts:  interrupts,
		out:         out,
		prompt:      prompt,
		isTTY:       isatty.IsTerminal(in.Fd()),
		historyPath: historyPath,
		logger:      logger,
	}
}

// pump feeds scanned lines into the channel and closes it at end of input.
// A scan error is delivered once before the close; the loop treats it as
// recoverable and the following read reports end of input.
func pump(in *os.File, lines chan<- lineEvent) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines <- lineEvent{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		lines <- lineEvent{err: err}
	}
	close(lines)
}

// ReadLine blocks for the next line, an interrupt, or cancellation.
func (t *Terminal) ReadLine(ctx context.Context) (string, error) {
	if t.isTTY {
		io.WriteString(t.out, t.prompt)
	}

	select {
	case ev, ok := <-t.lines:
		if !ok {
			return "", io.EOF
		}
		return ev.text, ev.err
	case <-t.interrupts:
		return "", ErrInterrupted
	case <-ctx.Done():
		return "", ErrInterrupted
	}
}

// AppendHistory appends the line to the history file, best effort.
func (t *Terminal) AppendHistory(line string) {
	if t.historyPath == "" {
		return
	}
	f, err := os.OpenFile(t.historyPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.logger.Debug("history append failed", map[string]any{"error": err.Error()})
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		t.logger.Debug("history append failed", map[string]any{"error": err.Error()})
	}
}

// Close releases the interrupt registration.
func (t *Terminal) Close() {
	signal.Stop(t.interrupts)
}

// Verify Terminal implements LineSource.
var _ LineSource = (*Terminal)(nil)
