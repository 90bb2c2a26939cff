package game

import "github.com/arcanaland/highlow/internal/card"

// Renderer receives notifications from a Session. Implementations draw
// the table; the session never depends on how.
type Renderer interface {
	// OnRoundStart is called after two cards are dealt. The first card is face up.
	OnRoundStart(first card.Card, second card.Face)
	// OnSecondRevealed is called once a guess is resolved
	OnSecondRevealed(result RoundResult)
	// OnRoundSettled is called after the settle delay, before the next deal
	OnRoundSettled()
	// OnGameFinished is called once, when fewer than two cards remain
	OnGameFinished(summary Summary)
}

// NopRenderer ignores every notification. Embed it to implement only some methods.
type NopRenderer struct{}

// OnRoundStart implements Renderer
func (NopRenderer) OnRoundStart(card.Card, card.Face) {}

// OnSecondRevealed implements Renderer
func (NopRenderer) OnSecondRevealed(RoundResult) {}

// OnRoundSettled implements Renderer
func (NopRenderer) OnRoundSettled() {}

// OnGameFinished implements Renderer
func (NopRenderer) OnGameFinished(Summary) {}

type multiRenderer []Renderer

// MultiRenderer notifies each renderer in order
func MultiRenderer(renderers ...Renderer) Renderer {
	return multiRenderer(renderers)
}

func (m multiRenderer) OnRoundStart(first card.Card, second card.Face) {
	for _, r := range m {
		r.OnRoundStart(first, second)
	}
}

func (m multiRenderer) OnSecondRevealed(result RoundResult) {
	for _, r := range m {
		r.OnSecondRevealed(result)
	}
}

func (m multiRenderer) OnRoundSettled() {
	for _, r := range m {
		r.OnRoundSettled()
	}
}

func (m multiRenderer) OnGameFinished(summary Summary) {
	for _, r := range m {
		r.OnGameFinished(summary)
	}
}
