package options

import (
	"github.com/arcanaland/settrainer/internal/card"
	"github.com/arcanaland/settrainer/internal/deck"
)

// DefaultCount is the number of distractors offered next to the answer
const DefaultCount = 11

// Generate builds a multiple-choice list for a round showing shown0 and
// shown1 whose answer is correct. Distractors keep every attribute value the
// two shown cards share, so none of them can be ruled out at a glance. The
// list holds correct exactly once at a random position and up to count
// distractors; fewer when the deck cannot supply them.
func Generate(rng deck.RNG, correct, shown0, shown1 card.Card, count int) []card.Card {
	out := deck.Sample(rng, candidates(correct, shown0, shown1), count)
	out = append(out, correct)
	deck.Shuffle(rng, out)
	return out
}

// Pool returns how many distractors are available for a pair, which bounds
// the length of Generate's result.
func Pool(correct, shown0, shown1 card.Card) int {
	return len(candidates(correct, shown0, shown1))
}

func candidates(correct, shown0, shown1 card.Card) []card.Card {
	shared := card.Shared(shown0, shown1)
	var pool []card.Card
	for _, c := range deck.Without(deck.All(), correct, shown0, shown1) {
		if matches(c, shown0, shared) {
			pool = append(pool, c)
		}
	}
	return pool
}

func matches(c, ref card.Card, attrs []card.Attribute) bool {
	for _, attr := range attrs {
		if c.Value(attr) != ref.Value(attr) {
			return false
		}
	}
	return true
}
