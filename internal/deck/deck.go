package deck

import (
	"math/rand"

	"github.com/arcanaland/settrainer/internal/card"
)

// Size is the number of distinct cards in a Set deck (3^4)
const Size = 81

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// NewRNG returns a seeded source. *rand.Rand satisfies RNG.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// All returns every card exactly once. The order is fixed: number, then
// color, then shape, then pattern. Each call returns a fresh slice.
func All() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, n := range card.Numbers {
		for _, c := range card.Colors {
			for _, s := range card.Shapes {
				for _, p := range card.Patterns {
					cards = append(cards, card.Card{Number: n, Color: c, Shape: s, Pattern: p})
				}
			}
		}
	}
	return cards
}

// Index returns the position of c within All()
func Index(c card.Card) int {
	i := 0
	for _, attr := range card.Attributes {
		i = i*3 + c.Value(attr)
	}
	return i
}

// FromIndex is the inverse of Index
func FromIndex(i int) card.Card {
	var c card.Card
	for k := len(card.Attributes) - 1; k >= 0; k-- {
		c = c.With(card.Attributes[k], i%3)
		i /= 3
	}
	return c
}

// Random picks each attribute independently and uniformly
func Random(rng RNG) card.Card {
	return card.Card{
		Number:  card.Numbers[rng.Intn(len(card.Numbers))],
		Color:   card.Colors[rng.Intn(len(card.Colors))],
		Shape:   card.Shapes[rng.Intn(len(card.Shapes))],
		Pattern: card.Patterns[rng.Intn(len(card.Patterns))],
	}
}

// Shuffle permutes cards in place (Fisher-Yates)
func Shuffle(rng RNG, cards []card.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Sample draws n cards without replacement from pool. The pool itself is
// left untouched. If n exceeds the pool size the whole pool is returned.
func Sample(rng RNG, pool []card.Card, n int) []card.Card {
	shuffled := make([]card.Card, len(pool))
	copy(shuffled, pool)
	Shuffle(rng, shuffled)
	if n < 0 {
		n = 0
	}
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Without returns the cards of pool that are not in exclude
func Without(pool []card.Card, exclude ...card.Card) []card.Card {
	var skip [Size]bool
	for _, c := range exclude {
		skip[Index(c)] = true
	}
	out := make([]card.Card, 0, len(pool))
	for _, c := range pool {
		if !skip[Index(c)] {
			out = append(out, c)
		}
	}
	return out
}
