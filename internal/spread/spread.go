package spread

import (
	"errors"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/arcanaland/settrainer/internal/card"
	"github.com/arcanaland/settrainer/internal/deck"
)

// DefaultAttempts bounds how many random samples Search draws
const DefaultAttempts = 100

// ErrInvalidSize is returned for spreads that cannot hold a set or exceed the deck
var ErrInvalidSize = errors.New("spread size must be between 3 and 81")

// Set is a valid triple found in a spread, with the positions it came from
type Set struct {
	Cards     [3]card.Card
	Positions [3]int
}

// FindAll enumerates every i<j<k whose cards form a set. Results are ordered
// by position.
func FindAll(cards []card.Card) []Set {
	var sets []Set
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			for k := j + 1; k < len(cards); k++ {
				if card.IsSet(cards[i], cards[j], cards[k]) {
					sets = append(sets, Set{
						Cards:     [3]card.Card{cards[i], cards[j], cards[k]},
						Positions: [3]int{i, j, k},
					})
				}
			}
		}
	}
	return sets
}

// HasSet reports whether any triple in cards is a set
func HasSet(cards []card.Card) bool {
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			for k := j + 1; k < len(cards); k++ {
				if card.IsSet(cards[i], cards[j], cards[k]) {
					return true
				}
			}
		}
	}
	return false
}

// Option configures a Generator
type Option func(*Generator)

// WithAttempts sets the random search budget. Values below zero are
// treated as zero, which sends every call straight to Construct.
func WithAttempts(n int) Option {
	return func(g *Generator) {
		if n < 0 {
			n = 0
		}
		g.attempts = n
	}
}

// Generator builds spreads that always contain at least one set
type Generator struct {
	rng      deck.RNG
	attempts int
}

// New creates a Generator drawing from rng
func New(rng deck.RNG, opts ...Option) *Generator {
	g := &Generator{rng: rng, attempts: DefaultAttempts}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns n distinct cards containing at least one set. It tries
// Search first and falls back to Construct once the budget is spent.
func (g *Generator) Generate(n int) ([]card.Card, error) {
	if n < 3 || n > deck.Size {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	if cards, ok := g.Search(n); ok {
		return cards, nil
	}
	klog.V(1).Infof("No set in %d random %d-card samples, constructing spread", g.attempts, n)
	return g.Construct(n), nil
}

// Search draws up to the configured number of random n-card samples and
// returns the first one holding a set. ok is false when none did.
func (g *Generator) Search(n int) (cards []card.Card, ok bool) {
	all := deck.All()
	for attempt := 0; attempt < g.attempts; attempt++ {
		sample := deck.Sample(g.rng, all, n)
		if HasSet(sample) {
			klog.V(2).Infof("Found %d-card spread on attempt %d", n, attempt+1)
			return sample, true
		}
	}
	return nil, false
}

// Construct builds a spread around a set made of two random cards and
// their completion. The other n-3 cards come from the rest of the deck, so
// nothing repeats. The result is shuffled and needs no further checking.
func (g *Generator) Construct(n int) []card.Card {
	pair := deck.Sample(g.rng, deck.All(), 2)
	a, b := pair[0], pair[1]
	c := card.Third(a, b)

	rest := deck.Sample(g.rng, deck.Without(deck.All(), a, b, c), n-3)
	cards := make([]card.Card, 0, n)
	cards = append(cards, a, b, c)
	cards = append(cards, rest...)
	deck.Shuffle(g.rng, cards)
	return cards
}
