package game

import (
	"errors"
	"fmt"

	"github.com/arcanaland/highlow/internal/card"
)

var errNotImmediate = errors.New("autoplay requires a session that settles synchronously")

// Strategy picks a guess from the face-up card
type Strategy func(first card.Card) Guess

// AlwaysHigh guesses high every round
func AlwaysHigh(card.Card) Guess { return High }

// AlwaysLow guesses low every round
func AlwaysLow(card.Card) Guess { return Low }

// Odds guesses high on 7 or below, low otherwise
func Odds(first card.Card) Guess {
	if first.Rank() <= 7 {
		return High
	}

	return Low
}

// StrategyByName returns the strategy for high, low or odds
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "high":
		return AlwaysHigh, nil
	case "low":
		return AlwaysLow, nil
	case "odds":
		return Odds, nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
}

// Autoplay starts s and plays it to the end with strategy.
// s must use an ImmediateScheduler so each guess settles before the next.
func Autoplay(s *Session, strategy Strategy) (Summary, error) {
	if _, ok := s.scheduler.(ImmediateScheduler); !ok {
		return Summary{}, errNotImmediate
	}

	if err := s.Start(); err != nil {
		return Summary{}, err
	}

	for {
		first, ok := s.Current()
		if !ok {
			break
		}

		if err := s.SubmitGuess(strategy(first)); err != nil {
			return s.Summary(), err
		}
	}

	return s.Summary(), nil
}
