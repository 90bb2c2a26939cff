package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	c, err := New(Heart, 1)
	a.NoError(err)
	a.Equal(Heart, c.Suit())
	a.Equal(1, c.Rank())

	c, err = New(Joker, JokerRank)
	a.NoError(err)
	a.Equal(14, c.Rank())

	for _, tc := range []struct {
		suit Suit
		rank int
	}{
		{Heart, 0},
		{Club, 14},
		{Spade, -1},
		{Joker, 13},
		{Suit(0), 3},
		{Suit(9), 3},
	} {
		_, err := New(tc.suit, tc.rank)
		a.True(errors.Is(err, ErrInvalidCard), "%v %d", tc.suit, tc.rank)
	}
}

func TestMustNew_panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(Diamond, 20) })
}

func TestCard_Label(t *testing.T) {
	a := assert.New(t)
	a.Equal("♥1", MustNew(Heart, 1).Label())
	a.Equal("♦10", MustNew(Diamond, 10).Label())
	a.Equal("♠7", MustNew(Spade, 7).Label())
	a.Equal("♣13", MustNew(Club, 13).String())
	a.Equal("J", MustNew(Joker, JokerRank).Label())
}

func TestSuit_IsRed(t *testing.T) {
	a := assert.New(t)
	a.True(Heart.IsRed())
	a.True(Diamond.IsRed())
	a.False(Spade.IsRed())
	a.False(Club.IsRed())
	a.False(Joker.IsRed())
	a.Equal("unknown", Suit(0).String())
	a.Equal("?", Suit(0).Symbol())
}
