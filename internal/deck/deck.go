package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/arcanaland/highlow/internal/rng"
)

// Size is the number of cards in a full deck, joker included
const Size = 53

// ErrOutOfCards is returned when DrawNext is called on an exhausted deck
var ErrOutOfCards = errors.New("out of cards")

// Deck is a 52-card deck plus one joker with a draw cursor
type Deck struct {
	cards  []card.Card
	cursor int
	rng    rng.Generator
}

// New returns an unshuffled deck: hearts, diamonds, spades and clubs
// from 1 to 13, then the joker. A nil generator uses crypto/rand.
func New(g rng.Generator) *Deck {
	if g == nil {
		g = rng.Crypto{}
	}

	d := &Deck{rng: g}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Standard {
		for rank := card.MinRank; rank <= card.MaxRank; rank++ {
			cards = append(cards, card.MustNew(suit, rank))
		}
	}

	cards = append(cards, card.MustNew(card.Joker, card.JokerRank))
	d.cards = cards
}

// Shuffle permutes the cards that have not been drawn yet.
// Before the first draw that is the whole deck.
func (d *Deck) Shuffle() {
	undrawn := d.cards[d.cursor:]
	for i := len(undrawn); i > 0; i-- {
		j := d.rng.Intn(i)
		undrawn[i-1], undrawn[j] = undrawn[j], undrawn[i-1]
	}
}

// ShuffleN shuffles n times
func (d *Deck) ShuffleN(n int) {
	for i := 0; i < n; i++ {
		d.Shuffle()
	}
}

// DrawNext returns the card under the cursor and advances it
func (d *Deck) DrawNext() (card.Card, error) {
	if d.cursor >= len(d.cards) {
		return card.Card{}, ErrOutOfCards
	}

	c := d.cards[d.cursor]
	d.cursor++
	return c, nil
}

// Remaining returns the number of cards left to draw
func (d *Deck) Remaining() int {
	return len(d.cards) - d.cursor
}

// Len returns the total number of cards, drawn or not
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of all cards in deal order
func (d *Deck) Cards() []card.Card {
	cp := make([]card.Card, len(d.cards))
	copy(cp, d.cards)
	return cp
}

// HashCode returns a SHA1 hash code of the deal order
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, c := range d.cards {
		_, _ = hash.Write([]byte(c.Label()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
