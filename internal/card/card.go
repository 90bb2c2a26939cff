package card

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidCard is returned when a suit and rank do not form a playing card
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

// suit constants, in deck construction order
const (
	Heart Suit = iota + 1
	Diamond
	Spade
	Club
	Joker
)

// Standard lists the four non-joker suits in deck order
var Standard = []Suit{Heart, Diamond, Spade, Club}

// rank bounds
const (
	MinRank   = 1
	MaxRank   = 13
	JokerRank = 14
)

// Symbol returns the display symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Spade:
		return "♠"
	case Club:
		return "♣"
	case Joker:
		return "J"
	default:
		return "?"
	}
}

// IsRed is true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Heart || s == Diamond
}

func (s Suit) String() string {
	switch s {
	case Heart:
		return "heart"
	case Diamond:
		return "diamond"
	case Spade:
		return "spade"
	case Club:
		return "club"
	case Joker:
		return "joker"
	default:
		return "unknown"
	}
}

// Card is an immutable playing card
type Card struct {
	suit Suit
	rank int
}

// New returns a card, or ErrInvalidCard if the rank does not fit the suit
func New(suit Suit, rank int) (Card, error) {
	switch suit {
	case Heart, Diamond, Spade, Club:
		if rank < MinRank || rank > MaxRank {
			return Card{}, fmt.Errorf("%w: %s rank %d", ErrInvalidCard, suit, rank)
		}
	case Joker:
		if rank != JokerRank {
			return Card{}, fmt.Errorf("%w: joker rank %d", ErrInvalidCard, rank)
		}
	default:
		return Card{}, fmt.Errorf("%w: unknown suit %d", ErrInvalidCard, int(suit))
	}

	return Card{suit: suit, rank: rank}, nil
}

// MustNew is New for card literals known to be valid
func MustNew(suit Suit, rank int) Card {
	c, err := New(suit, rank)
	if err != nil {
		panic(err)
	}

	return c
}

// Suit returns the card's suit
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the card's rank (14 for the joker)
func (c Card) Rank() int {
	return c.rank
}

// Label returns the suit symbol followed by the rank, e.g. ♥1 or ♣13.
// The joker has no rank suffix.
func (c Card) Label() string {
	if c.suit == Joker {
		return c.suit.Symbol()
	}

	return c.suit.Symbol() + strconv.Itoa(c.rank)
}

func (c Card) String() string {
	return c.Label()
}

// Face is whether a card is shown or hidden
type Face int

// face constants
const (
	FaceDown Face = iota
	FaceUp
)
