package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/highlow/internal/card"
)

// ErrInvalidGuess is returned for a guess other than High or Low
var ErrInvalidGuess = errors.New("guess must be high or low")

// Guess is the player's prediction for the second card
type Guess int

// Guess constants
const (
	High Guess = iota + 1
	Low
)

// Valid returns true for High and Low
func (g Guess) Valid() bool {
	return g == High || g == Low
}

func (g Guess) String() string {
	switch g {
	case High:
		return "high"
	case Low:
		return "low"
	default:
		return fmt.Sprintf("guess(%d)", int(g))
	}
}

// ParseGuess converts player input into a Guess
func ParseGuess(s string) (Guess, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hi", "high", "▲", "▲ high":
		return High, nil
	case "l", "lo", "low", "▼", "▼ low":
		return Low, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidGuess, s)
}

// Outcome is the result of a single round
type Outcome string

// Outcome constants
const (
	Win  Outcome = "win"
	Lose Outcome = "lose"
	Draw Outcome = "draw"
)

// Evaluate compares the two ranks against the guess.
// Equal ranks are a draw whatever the guess. The joker is simply rank 14.
func Evaluate(firstRank, secondRank int, guess Guess) (Outcome, error) {
	if !guess.Valid() {
		return "", ErrInvalidGuess
	}

	switch {
	case firstRank == secondRank:
		return Draw, nil
	case guess == High && firstRank < secondRank:
		return Win, nil
	case guess == Low && firstRank > secondRank:
		return Win, nil
	default:
		return Lose, nil
	}
}

// ScoreDelta returns the points earned for an outcome: the second card's rank on a win
func ScoreDelta(outcome Outcome, secondRank int) int {
	if outcome == Win {
		return secondRank
	}

	return 0
}

// RoundResult describes a resolved round
type RoundResult struct {
	Round      int
	First      card.Card
	Second     card.Card
	Guess      Guess
	Outcome    Outcome
	ScoreDelta int
}

// Summary holds the running tallies of a session
type Summary struct {
	Wins   int `json:"wins" yaml:"wins"`
	Losses int `json:"losses" yaml:"losses"`
	Draws  int `json:"draws" yaml:"draws"`
	Score  int `json:"score" yaml:"score"`
}

// Rounds returns the number of completed rounds
func (s Summary) Rounds() int {
	return s.Wins + s.Losses + s.Draws
}

func (s *Summary) apply(outcome Outcome, delta int) {
	switch outcome {
	case Win:
		s.Wins++
	case Lose:
		s.Losses++
	case Draw:
		s.Draws++
	}

	s.Score += delta
}
