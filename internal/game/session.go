package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/arcanaland/highlow/internal/card"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrAlreadyStarted is returned when Start is called twice
var ErrAlreadyStarted = errors.New("session already started")

// Phase is the state of the session
type Phase string

// Phase constants
const (
	// PhaseDealing means the next pair is being drawn, or the deck is being checked for exhaustion
	PhaseDealing Phase = "dealing"

	// PhaseAwaitingGuess means a pair is on the table and the player must pick high or low
	PhaseAwaitingGuess Phase = "awaiting-guess"

	// PhaseResolving means a guess was accepted and the round is waiting for the settle delay
	PhaseResolving Phase = "resolving"

	// PhaseFinished means fewer than two cards remain. No more guesses are accepted.
	PhaseFinished Phase = "finished"
)

// Options contains options for creating a new Session
type Options struct {
	Scheduler   Scheduler
	SettleDelay time.Duration
	Logger      logrus.FieldLogger
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		Scheduler:   TimerScheduler{},
		SettleDelay: 500 * time.Millisecond,
		Logger:      logrus.StandardLogger(),
	}
}

// Dealer is the part of a deck the session draws from. *deck.Deck implements it.
type Dealer interface {
	DrawNext() (card.Card, error)
	Remaining() int
}

type pair struct {
	first, second card.Card
}

// Session is one game of High & Low, from the first deal to the result screen
type Session struct {
	id          uuid.UUID
	deck        Dealer
	renderer    Renderer
	scheduler   Scheduler
	settleDelay time.Duration
	log         logrus.FieldLogger

	mu      sync.Mutex
	phase   Phase
	started bool
	locked  bool
	round   int
	current *pair
	summary Summary
	history []RoundResult
	done    chan struct{}
}

// NewSession returns a session over d. The deck should already be shuffled.
func NewSession(d Dealer, r Renderer, opts Options) *Session {
	if r == nil {
		r = NopRenderer{}
	}

	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}

	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	id := uuid.New()
	return &Session{
		id:          id,
		deck:        d,
		renderer:    r,
		scheduler:   opts.Scheduler,
		settleDelay: opts.SettleDelay,
		log:         opts.Logger.WithField("session", id.String()),
		phase:       PhaseDealing,
		done:        make(chan struct{}),
	}
}

// Start deals the first round
func (s *Session) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	s.log.WithField("remaining", s.deck.Remaining()).Debug("session started")
	s.deal()
	return nil
}

// deal either finishes the game or puts the next pair on the table
func (s *Session) deal() {
	s.mu.Lock()
	s.phase = PhaseDealing
	s.current = nil

	if s.deck.Remaining() < 2 {
		s.phase = PhaseFinished
		summary := s.summary
		s.mu.Unlock()

		s.log.WithFields(logrus.Fields{
			"wins":   summary.Wins,
			"losses": summary.Losses,
			"draws":  summary.Draws,
			"score":  summary.Score,
		}).Info("game finished")

		s.renderer.OnGameFinished(summary)
		close(s.done)
		return
	}

	first, err := s.deck.DrawNext()
	if err != nil {
		s.mu.Unlock()
		panic(fmt.Errorf("could not draw first card: %w", err))
	}

	second, err := s.deck.DrawNext()
	if err != nil {
		s.mu.Unlock()
		panic(fmt.Errorf("could not draw second card: %w", err))
	}

	s.round++
	s.current = &pair{first: first, second: second}
	s.locked = false
	s.phase = PhaseAwaitingGuess
	s.mu.Unlock()

	s.renderer.OnRoundStart(first, card.FaceDown)
}

// SubmitGuess resolves the current round.
// An invalid guess returns ErrInvalidGuess and changes nothing. A guess
// outside of PhaseAwaitingGuess, or a second guess for the same round, is ignored.
func (s *Session) SubmitGuess(guess Guess) error {
	if !guess.Valid() {
		return ErrInvalidGuess
	}

	s.mu.Lock()
	if s.phase != PhaseAwaitingGuess || s.locked {
		s.mu.Unlock()
		return nil
	}

	s.locked = true
	s.phase = PhaseResolving

	p := s.current
	outcome, err := Evaluate(p.first.Rank(), p.second.Rank(), guess)
	if err != nil {
		// unreachable, the guess was validated above
		s.mu.Unlock()
		return err
	}

	result := RoundResult{
		Round:      s.round,
		First:      p.first,
		Second:     p.second,
		Guess:      guess,
		Outcome:    outcome,
		ScoreDelta: ScoreDelta(outcome, p.second.Rank()),
	}

	s.summary.apply(result.Outcome, result.ScoreDelta)
	s.history = append(s.history, result)
	score := s.summary.Score
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"round":   result.Round,
		"first":   result.First.Label(),
		"second":  result.Second.Label(),
		"guess":   guess.String(),
		"outcome": string(outcome),
		"score":   score,
	}).Debug("round resolved")

	s.renderer.OnSecondRevealed(result)
	s.scheduler.AfterFunc(s.settleDelay, s.settle)
	return nil
}

func (s *Session) settle() {
	s.renderer.OnRoundSettled()
	s.deal()
}

// ID returns the session identifier used in logs
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Phase returns the current phase
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phase
}

// Current returns the face-up card while a guess is awaited
func (s *Session) Current() (card.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAwaitingGuess || s.current == nil {
		return card.Card{}, false
	}

	return s.current.first, true
}

// Summary returns the tallies so far
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.summary
}

// History returns every resolved round in order
func (s *Session) History() []RoundResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]RoundResult, len(s.history))
	copy(cp, s.history)
	return cp
}

// Remaining returns the number of cards left in the deck
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deck.Remaining()
}

// Done is closed when the session reaches PhaseFinished
func (s *Session) Done() <-chan struct{} {
	return s.done
}
