package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/arcanaland/highlow/internal/config"
	"github.com/arcanaland/highlow/internal/game"
	"github.com/arcanaland/highlow/internal/render"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a whole game automatically with a fixed strategy",
	Long: `Simulate plays every round with a strategy instead of asking for guesses:
  high  always guess high
  low   always guess low
  odds  guess high on 7 or below, low otherwise

Examples:
  highlow simulate --strategy odds
  highlow simulate --no-shuffle --output yaml
  highlow simulate --seed 42 --rounds --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		name, _ := cmd.Flags().GetString("strategy")
		seed, _ := cmd.Flags().GetInt64("seed")
		noShuffle, _ := cmd.Flags().GetBool("no-shuffle")
		output, _ := cmd.Flags().GetString("output")
		withRounds, _ := cmd.Flags().GetBool("rounds")
		verbose, _ := cmd.Flags().GetBool("verbose")

		strategy, err := game.StrategyByName(name)
		if err != nil {
			return err
		}

		shuffles := cfg.ShuffleCount
		if noShuffle {
			shuffles = 0
		}

		out := cmd.OutOrStdout()
		d := newDeck(seed, shuffles)

		var renderer game.Renderer = game.NopRenderer{}
		if verbose && output == "text" {
			renderer = render.NewTerminal(out)
		}

		session := game.NewSession(d, renderer, game.Options{
			Scheduler: game.ImmediateScheduler{},
			Logger:    logrus.StandardLogger(),
		})

		summary, err := game.Autoplay(session, strategy)
		if err != nil {
			return fmt.Errorf("simulation error: %w", err)
		}

		rep := report{
			Strategy: name,
			Seed:     seed,
			DeckHash: d.HashCode(),
			Summary:  summary,
		}

		if withRounds {
			for _, r := range session.History() {
				rep.Rounds = append(rep.Rounds, roundReport{
					Round:      r.Round,
					First:      r.First.Label(),
					Second:     r.Second.Label(),
					Guess:      r.Guess.String(),
					Outcome:    string(r.Outcome),
					ScoreDelta: r.ScoreDelta,
				})
			}
		}

		return writeReport(out, output, rep)
	},
}

type report struct {
	Strategy string        `json:"strategy" yaml:"strategy"`
	Seed     int64         `json:"seed,omitempty" yaml:"seed,omitempty"`
	DeckHash string        `json:"deckHash" yaml:"deckHash"`
	Summary  game.Summary  `json:"summary" yaml:"summary"`
	Rounds   []roundReport `json:"rounds,omitempty" yaml:"rounds,omitempty"`
}

type roundReport struct {
	Round      int    `json:"round" yaml:"round"`
	First      string `json:"first" yaml:"first"`
	Second     string `json:"second" yaml:"second"`
	Guess      string `json:"guess" yaml:"guess"`
	Outcome    string `json:"outcome" yaml:"outcome"`
	ScoreDelta int    `json:"scoreDelta" yaml:"scoreDelta"`
}

func writeReport(out io.Writer, format string, rep report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		data, err := yaml.Marshal(rep)
		if err != nil {
			return err
		}

		_, err = out.Write(data)
		return err
	case "text":
		fmt.Fprintf(out, "Strategy: %s\n", rep.Strategy)
		fmt.Fprintf(out, "Deck:     %s\n", rep.DeckHash)
		for _, r := range rep.Rounds {
			fmt.Fprintf(out, "%2d. %-4s %-4s %-4s -> %s +%d\n",
				r.Round, r.First, r.Guess, r.Second, r.Outcome, r.ScoreDelta)
		}
		fmt.Fprintln(out, render.ResultBox(rep.Summary))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func init() {
	RootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringP("strategy", "s", "odds", "Guessing strategy: high, low or odds")
	simulateCmd.Flags().Int64("seed", 0, "Shuffle with a fixed seed")
	simulateCmd.Flags().Bool("no-shuffle", false, "Deal the deck in its unshuffled order")
	simulateCmd.Flags().StringP("output", "o", "text", "Output format: text, json or yaml")
	simulateCmd.Flags().Bool("rounds", false, "Include every round in the report")
	simulateCmd.Flags().BoolP("verbose", "v", false, "Draw the table for each round (text output only)")
}
