package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/arcanaland/settrainer/internal/card"
	"github.com/arcanaland/settrainer/internal/deck"
	"github.com/arcanaland/settrainer/internal/options"
	"github.com/arcanaland/settrainer/internal/spread"
)

var (
	ErrNoRound       = errors.New("no round in progress")
	ErrInvalidTarget = errors.New("challenge target must be positive")
	ErrBadPosition   = errors.New("positions must be three distinct cards of the spread")
)

// Stats counts answers over the lifetime of a session
type Stats struct {
	Correct   int
	Incorrect int
}

// Round is one completing-card question
type Round struct {
	Shown   [2]card.Card
	Answer  card.Card
	Options []card.Card // empty unless multiple choice is enabled
}

// SpreadRound is one find-a-set question
type SpreadRound struct {
	Cards []card.Card
	Sets  []spread.Set
}

// Result is the outcome of submitting an answer
type Result struct {
	Correct bool
	Answer  card.Card

	ChallengeComplete bool
	ChallengeFailed   bool
	Progress          int
	Elapsed           time.Duration
	Best              time.Duration
	NewRecord         bool
}

// Challenge is a timed run of Target correct answers in a row
type Challenge struct {
	Target   int
	Progress int
	Started  time.Time
}

// Session owns the state of one trainer run. The card logic it calls is
// stateless; everything that changes between rounds lives here.
type Session struct {
	ID    uuid.UUID
	Stats Stats

	rng         deck.RNG
	now         func() time.Time
	choices     int
	spreads     *spread.Generator
	round       *Round
	spreadRound *SpreadRound
	challenge   *Challenge
	best        map[int]time.Duration
}

// Option configures a Session
type Option func(*Session)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithChoices turns on multiple choice with count distractors per round
func WithChoices(count int) Option {
	return func(s *Session) { s.choices = count }
}

// WithSpreadAttempts sets the random search budget of find-a-set rounds
func WithSpreadAttempts(n int) Option {
	return func(s *Session) { s.spreads = spread.New(s.rng, spread.WithAttempts(n)) }
}

// New creates a session drawing all randomness from rng
func New(rng deck.RNG, opts ...Option) *Session {
	s := &Session{
		ID:   uuid.New(),
		rng:  rng,
		now:  time.Now,
		best: make(map[int]time.Duration),
	}
	s.spreads = spread.New(rng)
	for _, opt := range opts {
		opt(s)
	}
	klog.V(1).Infof("Session %s started", s.ID)
	return s
}

// NewRound deals two different cards and remembers their completion
func (s *Session) NewRound() Round {
	pair := deck.Sample(s.rng, deck.All(), 2)
	r := &Round{
		Shown:  [2]card.Card{pair[0], pair[1]},
		Answer: card.Third(pair[0], pair[1]),
	}
	if s.choices > 0 {
		r.Options = options.Generate(s.rng, r.Answer, r.Shown[0], r.Shown[1], s.choices)
	}
	s.round = r
	return *r
}

// Round returns the current completing-card round, if any
func (s *Session) Round() (Round, bool) {
	if s.round == nil {
		return Round{}, false
	}
	return *s.round, true
}

// Submit checks a guess against the current round and closes it
func (s *Session) Submit(guess card.Card) (Result, error) {
	if s.round == nil {
		return Result{}, ErrNoRound
	}
	res := Result{
		Correct: card.Equal(guess, s.round.Answer),
		Answer:  s.round.Answer,
	}
	s.round = nil
	s.record(&res)
	return res, nil
}

// StartChallenge begins a timed run of target correct answers and deals the
// first round
func (s *Session) StartChallenge(target int) (Round, error) {
	if target <= 0 {
		return Round{}, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}
	s.challenge = &Challenge{Target: target, Started: s.now()}
	klog.V(1).Infof("Session %s: challenge of %d started", s.ID, target)
	return s.NewRound(), nil
}

// Challenge returns the running challenge, if any
func (s *Session) Challenge() (Challenge, bool) {
	if s.challenge == nil {
		return Challenge{}, false
	}
	return *s.challenge, true
}

// Best returns the fastest completed challenge for target
func (s *Session) Best(target int) (time.Duration, bool) {
	d, ok := s.best[target]
	return d, ok
}

// NewSpreadRound deals n cards containing at least one set
func (s *Session) NewSpreadRound(n int) (SpreadRound, error) {
	cards, err := s.spreads.Generate(n)
	if err != nil {
		return SpreadRound{}, err
	}
	s.spreadRound = &SpreadRound{Cards: cards, Sets: spread.FindAll(cards)}
	return *s.spreadRound, nil
}

// SubmitSet checks whether the cards at positions i, j and k (0-based) of
// the current spread form a set. An invalid pick leaves the round open.
func (s *Session) SubmitSet(i, j, k int) (Result, error) {
	sr := s.spreadRound
	if sr == nil {
		return Result{}, ErrNoRound
	}
	for _, p := range []int{i, j, k} {
		if p < 0 || p >= len(sr.Cards) {
			return Result{}, fmt.Errorf("%w: %d out of range", ErrBadPosition, p+1)
		}
	}
	if i == j || j == k || i == k {
		return Result{}, ErrBadPosition
	}

	res := Result{Correct: card.IsSet(sr.Cards[i], sr.Cards[j], sr.Cards[k])}
	s.spreadRound = nil
	s.record(&res)
	return res, nil
}

// Hint returns one set of the current spread
func (s *Session) Hint() (spread.Set, error) {
	if s.spreadRound == nil {
		return spread.Set{}, ErrNoRound
	}
	// Spreads are generated solvable, so Sets is never empty here.
	return s.spreadRound.Sets[s.rng.Intn(len(s.spreadRound.Sets))], nil
}

func (s *Session) record(res *Result) {
	if !res.Correct {
		s.Stats.Incorrect++
		if s.challenge != nil {
			res.ChallengeFailed = true
			res.Progress = s.challenge.Progress
			klog.V(1).Infof("Session %s: challenge failed at %d/%d", s.ID, s.challenge.Progress, s.challenge.Target)
			s.challenge = nil
		}
		return
	}

	s.Stats.Correct++
	ch := s.challenge
	if ch == nil {
		return
	}
	ch.Progress++
	res.Progress = ch.Progress
	if ch.Progress < ch.Target {
		return
	}

	res.ChallengeComplete = true
	res.Elapsed = s.now().Sub(ch.Started)
	best, ok := s.best[ch.Target]
	if !ok || res.Elapsed < best {
		s.best[ch.Target] = res.Elapsed
		res.NewRecord = true
		best = res.Elapsed
	}
	res.Best = best
	klog.V(1).Infof("Session %s: challenge of %d done in %s", s.ID, ch.Target, res.Elapsed)
	s.challenge = nil
}
