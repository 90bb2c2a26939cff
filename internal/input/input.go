package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pterm/pterm"

	"github.com/arcanaland/highlow/internal/game"
)

// Source produces the player's guesses
type Source interface {
	// NextGuess blocks until the player picks high or low.
	// It returns game.ErrInvalidGuess for unrecognised input and io.EOF when input ends.
	NextGuess(ctx context.Context) (game.Guess, error)
}

// LineSource reads one guess per line
type LineSource struct {
	prompt io.Writer
	r      io.Reader

	once  sync.Once
	lines chan line
}

type line struct {
	text string
	err  error
}

// NewLineSource reads guesses from r and writes a prompt to w (w may be nil)
func NewLineSource(r io.Reader, w io.Writer) *LineSource {
	return &LineSource{
		prompt: w,
		r:      r,
	}
}

// scan reads r on its own goroutine so a blocked read never holds up
// cancellation. The goroutine lives until r returns.
func (l *LineSource) scan() {
	l.lines = make(chan line)

	go func() {
		defer close(l.lines)

		scanner := bufio.NewScanner(l.r)
		for scanner.Scan() {
			l.lines <- line{text: scanner.Text()}
		}

		if err := scanner.Err(); err != nil {
			l.lines <- line{err: err}
		}
	}()
}

// NextGuess implements Source. Blank lines are skipped.
func (l *LineSource) NextGuess(ctx context.Context) (game.Guess, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		l.once.Do(l.scan)

		if l.prompt != nil {
			fmt.Fprint(l.prompt, "high or low? [h/l] ")
		}

		var next line
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case ln, ok := <-l.lines:
			if !ok {
				return 0, io.EOF
			}
			next = ln
		}

		if next.err != nil {
			return 0, next.err
		}

		text := strings.TrimSpace(next.text)
		if text == "" {
			continue
		}

		return game.ParseGuess(text)
	}
}

var selectOptions = []string{"▲ HIGH", "▼ LOW"}

// SelectSource asks with an interactive arrow-key menu. It needs a terminal.
type SelectSource struct {
	printer *pterm.InteractiveSelectPrinter
}

// NewSelectSource returns a SelectSource
func NewSelectSource() *SelectSource {
	return &SelectSource{
		printer: pterm.DefaultInteractiveSelect.
			WithDefaultText("Your guess").
			WithOptions(selectOptions),
	}
}

// NextGuess implements Source
func (s *SelectSource) NextGuess(ctx context.Context) (game.Guess, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	selected, err := s.printer.Show()
	if err != nil {
		return 0, err
	}

	return game.ParseGuess(selected)
}
