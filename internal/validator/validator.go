package validator

import (
	"errors"
	"fmt"

	"github.com/arcanaland/settrainer/internal/card"
	"github.com/arcanaland/settrainer/internal/deck"
	"github.com/arcanaland/settrainer/internal/spread"
)

// ErrInputCount is returned when the number of inputs cannot be checked
var ErrInputCount = errors.New("need 3 to 81 cards")

type ValidationResults struct {
	Errors   []string
	Warnings []string

	Cards []card.Card
	Sets  []spread.Set
}

// Valid reports whether validation produced no errors
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Inputs  []string
	Results ValidationResults
}

func NewValidator(inputs []string) *Validator {
	return &Validator{
		Inputs:  inputs,
		Results: ValidationResults{},
	}
}

// Validate parses every input and checks the cards as a set (exactly three)
// or as a spread (more than three)
func (v *Validator) Validate() (ValidationResults, error) {
	if len(v.Inputs) < 3 || len(v.Inputs) > deck.Size {
		return v.Results, fmt.Errorf("%w, got %d", ErrInputCount, len(v.Inputs))
	}

	v.parseCards()
	v.validateDistinct()

	if len(v.Results.Cards) < 3 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("only %d valid card(s), need at least 3", len(v.Results.Cards)))
		return v.Results, nil
	}

	if len(v.Inputs) == 3 {
		v.validateSet()
	} else {
		v.validateSpread()
	}

	return v.Results, nil
}

// parseCards collects every card that parses and reports the rest
func (v *Validator) parseCards() {
	for i, in := range v.Inputs {
		c, err := card.Parse(in)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card %d: %v", i+1, err))
			continue
		}
		v.Results.Cards = append(v.Results.Cards, c)
	}
}

// validateDistinct checks that no card is given twice
func (v *Validator) validateDistinct() {
	seen := make(map[card.Card]bool)
	for _, c := range v.Results.Cards {
		if seen[c] {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("duplicate card: %s (%s)", card.Shorthand(c), c))
			continue
		}
		seen[c] = true
	}
}

// validateSet explains each attribute that breaks the set rule
func (v *Validator) validateSet() {
	c := v.Results.Cards
	if len(c) != 3 {
		return // Already reported as a parse error
	}
	for _, attr := range card.Violations(c[0], c[1], c[2]) {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: two the same and one different", attr))
	}
	if len(v.Results.Errors) == 0 {
		v.Results.Sets = spread.FindAll(c)
	}
}

// validateSpread lists the sets in the spread and warns when there are none
func (v *Validator) validateSpread() {
	v.Results.Sets = spread.FindAll(v.Results.Cards)
	if len(v.Results.Sets) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "spread contains no set")
	}
}
