package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/config"
	"github.com/arcanaland/highlow/internal/game"
	"github.com/arcanaland/highlow/internal/input"
	"github.com/arcanaland/highlow/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of High & Low",
	Long: `Play deals the shuffled deck two cards at a time. The left card is shown,
the right card is face down. Guess high or low; a correct guess scores the
right card's rank. The game ends when fewer than two cards are left.

Examples:
  highlow play
  highlow play --plain
  highlow play --seed 42 --settle-delay 0s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		seed, _ := cmd.Flags().GetInt64("seed")
		noShuffle, _ := cmd.Flags().GetBool("no-shuffle")
		plain, _ := cmd.Flags().GetBool("plain")

		delay := cfg.SettleDelay()
		if cmd.Flags().Changed("settle-delay") {
			delay, _ = cmd.Flags().GetDuration("settle-delay")
		}

		shuffles := cfg.ShuffleCount
		if noShuffle {
			shuffles = 0
		}

		out := cmd.OutOrStdout()
		if banner, err := render.Banner(); err == nil {
			fmt.Fprint(out, banner)
		} else {
			logrus.WithError(err).Debug("could not render banner")
		}

		var src input.Source
		if plain || cfg.Input == config.InputLine || !term.IsTerminal(int(os.Stdin.Fd())) {
			src = input.NewLineSource(cmd.InOrStdin(), out)
		} else {
			src = input.NewSelectSource()
		}

		signal := newRoundSignal()
		session := game.NewSession(
			newDeck(seed, shuffles),
			game.MultiRenderer(render.NewTerminal(out), signal),
			game.Options{
				Scheduler:   game.TimerScheduler{},
				SettleDelay: delay,
				Logger:      logrus.StandardLogger(),
			},
		)

		return playLoop(cmd.Context(), session, src, signal.ch, out)
	},
}

// roundSignal wakes the input loop whenever a new pair is on the table
type roundSignal struct {
	game.NopRenderer
	ch chan struct{}
}

func newRoundSignal() roundSignal {
	// Start deals synchronously, so the first signal must not block
	return roundSignal{ch: make(chan struct{}, 1)}
}

func (r roundSignal) OnRoundStart(card.Card, card.Face) {
	r.ch <- struct{}{}
}

// playLoop feeds guesses from src into s until the game is finished
func playLoop(ctx context.Context, s *game.Session, src input.Source, ready <-chan struct{}, out io.Writer) error {
	if err := s.Start(); err != nil {
		return err
	}

	for {
		select {
		case <-s.Done():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		if err := readGuess(ctx, s, src, out); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out, "\nGame abandoned.")
				return nil
			}

			return err
		}
	}
}

func readGuess(ctx context.Context, s *game.Session, src input.Source, out io.Writer) error {
	for {
		guess, err := src.NextGuess(ctx)
		if errors.Is(err, game.ErrInvalidGuess) {
			fmt.Fprintln(out, "Please answer high or low.")
			continue
		}

		if err != nil {
			return err
		}

		return s.SubmitGuess(guess)
	}
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64("seed", 0, "Shuffle with a fixed seed to replay a deal")
	playCmd.Flags().Bool("no-shuffle", false, "Deal the deck in its unshuffled order")
	playCmd.Flags().Bool("plain", false, "Read guesses as typed lines instead of a menu")
	playCmd.Flags().Duration("settle-delay", 0, "Pause after revealing a card (overrides settle_delay_ms)")
}
