package render

import (
	"bytes"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/game"
)

func newTestTerminal(t *testing.T) (*Terminal, *bytes.Buffer) {
	t.Helper()

	noColor := colorize.NoColor
	colorize.NoColor = true
	pterm.DisableColor()
	t.Cleanup(func() {
		colorize.NoColor = noColor
		pterm.EnableColor()
	})

	buf := &bytes.Buffer{}
	return NewTerminal(buf), buf
}

func TestTerminal_round(t *testing.T) {
	a := assert.New(t)
	r, buf := newTestTerminal(t)
	a.Equal(defaultWidth, r.width)

	first := card.MustNew(card.Heart, 3)
	second := card.MustNew(card.Club, 11)

	r.OnRoundStart(first, card.FaceDown)
	out := buf.String()
	a.Contains(out, "Round 1")
	a.Contains(out, "♥3")
	a.Contains(out, "░░░░░")
	a.NotContains(out, "♣11")
	a.NotContains(out, "\x1b[")

	buf.Reset()
	r.OnSecondRevealed(game.RoundResult{
		Round:      1,
		First:      first,
		Second:     second,
		Guess:      game.High,
		Outcome:    game.Win,
		ScoreDelta: 11,
	})
	out = buf.String()
	a.Contains(out, "♥3")
	a.Contains(out, "♣11")
	a.Contains(out, "WIN +11")

	buf.Reset()
	r.OnRoundSettled()
	a.Contains(buf.String(), "────")

	buf.Reset()
	r.OnRoundStart(card.MustNew(card.Joker, 14), card.FaceDown)
	a.Contains(buf.String(), "Round 2")
	a.Contains(buf.String(), "  J  ")

	buf.Reset()
	r.OnSecondRevealed(game.RoundResult{Outcome: game.Lose, First: first, Second: first})
	a.Contains(buf.String(), "\n"+strings.Repeat(" ", (defaultWidth-4)/2)+"LOSE\n")

	buf.Reset()
	r.OnSecondRevealed(game.RoundResult{Outcome: game.Draw, First: first, Second: first})
	a.Contains(buf.String(), "DRAW")
}

func TestTerminal_OnGameFinished(t *testing.T) {
	a := assert.New(t)
	r, buf := newTestTerminal(t)

	r.OnGameFinished(game.Summary{Wins: 24, Losses: 2, Draws: 0, Score: 180})
	out := buf.String()

	a.Contains(out, "Result")
	a.Contains(out, "win: 24")
	a.Contains(out, "lose: 2")
	a.Contains(out, "draw: 0")
	a.Contains(out, "Score: 180")
}

func TestCardLines(t *testing.T) {
	a := assert.New(t)
	noColor := colorize.NoColor
	colorize.NoColor = true
	defer func() { colorize.NoColor = noColor }()

	lines := cardLines(card.MustNew(card.Diamond, 10), card.FaceUp)
	a.Equal([]string{"┌─────┐", "│ ♦10 │", "└─────┘"}, lines)

	lines = cardLines(card.Card{}, card.FaceDown)
	a.Equal("│░░░░░│", lines[1])
}

func TestPaint(t *testing.T) {
	a := assert.New(t)
	noColor := colorize.NoColor
	defer func() { colorize.NoColor = noColor }()

	colorize.NoColor = false
	s := paint("x", redInk, faceColor)
	a.Equal("\x1b[38;2;255;0;0m\x1b[48;2;255;255;255mx\x1b[0m", s)

	colorize.NoColor = true
	a.Equal("x", paint("x", redInk, faceColor))
}

func TestPad(t *testing.T) {
	a := assert.New(t)
	a.Equal(" ♥1  ", pad("♥1", 5))
	a.Equal(" ♥13 ", pad("♥13", 5))
	a.Equal("  J  ", pad("J", 5))
	a.Equal("toolong", pad("toolong", 5))
}

func TestBanner(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	banner, err := Banner()
	assert.NoError(t, err)
	assert.True(t, len(strings.TrimSpace(banner)) > 0)
}
