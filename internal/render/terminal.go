package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"golang.org/x/term"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/game"
)

const (
	defaultWidth = 80
	cardInner    = 5
	cardGap      = 6
)

// table colours
var (
	redInk    = mustHex("#FF0000")
	blackInk  = mustHex("#000000")
	faceColor = mustHex("#FFFFFF")
	backColor = mustHex("#165E83")
	feltColor = mustHex("#00B040")
)

var (
	winStyle  = colorize.New(colorize.FgGreen, colorize.Bold)
	loseStyle = colorize.New(colorize.FgRed, colorize.Bold)
	drawStyle = colorize.New(colorize.FgYellow, colorize.Bold)
	headStyle = colorize.New(colorize.FgHiWhite, colorize.Bold)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}

	return c
}

// Terminal draws the table to a terminal using ANSI escapes
type Terminal struct {
	out   io.Writer
	width int

	mu    sync.Mutex
	round int
}

// NewTerminal returns a renderer writing to out. The board is centred
// on the terminal width when out is a terminal.
func NewTerminal(out io.Writer) *Terminal {
	width := defaultWidth
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	return &Terminal{out: out, width: width}
}

// OnRoundStart implements game.Renderer
func (t *Terminal) OnRoundStart(first card.Card, second card.Face) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.round++
	header := fmt.Sprintf("Round %d", t.round)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.center(headStyle.Sprint(header), len(header)))
	t.drawPair(first, card.FaceUp, card.Card{}, second)
}

// OnSecondRevealed implements game.Renderer
func (t *Terminal) OnSecondRevealed(result game.RoundResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.drawPair(result.First, card.FaceUp, result.Second, card.FaceUp)

	text, style := "DRAW", drawStyle
	switch result.Outcome {
	case game.Win:
		text, style = fmt.Sprintf("WIN +%d", result.ScoreDelta), winStyle
	case game.Lose:
		text, style = "LOSE", loseStyle
	}

	fmt.Fprintln(t.out, t.center(style.Sprint(text), utf8.RuneCountInString(text)))
}

// OnRoundSettled implements game.Renderer
func (t *Terminal) OnRoundSettled() {
	t.mu.Lock()
	defer t.mu.Unlock()

	rule := strings.Repeat("─", cardInner*2+4+cardGap)
	fmt.Fprintln(t.out, t.center(paint(rule, faceColor, feltColor), utf8.RuneCountInString(rule)))
}

// OnGameFinished implements game.Renderer
func (t *Terminal) OnGameFinished(summary game.Summary) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, ResultBox(summary))
}

// ResultBox renders the final tallies
func ResultBox(summary game.Summary) string {
	text := fmt.Sprintf("win: %d\nlose: %d\ndraw: %d\n\nScore: %d",
		summary.Wins, summary.Losses, summary.Draws, summary.Score)

	return pterm.DefaultBox.
		WithTitle("Result").
		WithTitleTopCenter().
		WithHorizontalPadding(4).
		Sprint(text)
}

// Banner renders the title screen
func Banner() (string, error) {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("HIGH ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("LOW", pterm.FgBlue.ToStyle()),
	).Srender()
}

func (t *Terminal) drawPair(left card.Card, leftFace card.Face, right card.Card, rightFace card.Face) {
	l := cardLines(left, leftFace)
	r := cardLines(right, rightFace)

	visible := (cardInner+2)*2 + cardGap
	for i := range l {
		line := l[i] + strings.Repeat(" ", cardGap) + r[i]
		fmt.Fprintln(t.out, t.center(line, visible))
	}
}

// cardLines returns the three lines of a card drawn face up or face down
func cardLines(c card.Card, face card.Face) []string {
	top := "┌" + strings.Repeat("─", cardInner) + "┐"
	bottom := "└" + strings.Repeat("─", cardInner) + "┘"

	var middle string
	if face == card.FaceDown {
		middle = paint(strings.Repeat("░", cardInner), faceColor, backColor)
	} else {
		ink := blackInk
		if c.Suit().IsRed() {
			ink = redInk
		}
		middle = paint(pad(c.Label(), cardInner), ink, faceColor)
	}

	return []string{top, "│" + middle + "│", bottom}
}

// pad centres s in a field of width runes
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func (t *Terminal) center(s string, visible int) string {
	if visible >= t.width {
		return s
	}

	return strings.Repeat(" ", (t.width-visible)/2) + s
}

// paint wraps text in 24-bit foreground and background escapes.
// Nothing is added when colour output is disabled.
func paint(text string, fg, bg colorful.Color) string {
	if colorize.NoColor {
		return text
	}

	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s\x1b[0m",
		r1, g1, b1, r2, g2, b2, text)
}
