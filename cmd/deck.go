package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/highlow/internal/deck"
	"github.com/arcanaland/highlow/internal/rng"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the deck",
	Long:  `Commands for inspecting the 53-card deck and its deal order.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the deck in deal order",
	Long: `List prints the 53 cards in the order they would be dealt.
Without --seed the deck is listed unshuffled. With --seed the listing matches
'highlow play --seed' and 'highlow simulate --seed' for the same shuffle count.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetInt64("seed")
		shuffles, _ := cmd.Flags().GetInt("shuffles")

		if seed == 0 {
			shuffles = 0
		}

		d := newDeck(seed, shuffles)
		out := cmd.OutOrStdout()

		red := colorize.New(colorize.FgRed)
		for i, c := range d.Cards() {
			label := c.Label()
			if c.Suit().IsRed() {
				label = red.Sprint(label)
			}

			fmt.Fprintf(out, "%2d  %s\n", i+1, label)
		}

		fmt.Fprintf(out, "\nhash: %s\n", d.HashCode())
		return nil
	},
}

// newDeck returns a deck shuffled n times. A zero seed shuffles with crypto/rand.
func newDeck(seed int64, n int) *deck.Deck {
	var g rng.Generator
	if seed != 0 {
		g = rng.NewSeeded(seed)
	}

	d := deck.New(g)
	d.ShuffleN(n)
	return d
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)

	deckListCmd.Flags().Int64("seed", 0, "Shuffle with a fixed seed")
	deckListCmd.Flags().Int("shuffles", 1, "Number of shuffles to apply when --seed is set")
}
