package card

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidInput is wrapped by every shorthand parse failure
	ErrInvalidInput = errors.New("invalid card input")

	ErrUnknownCode        = fmt.Errorf("%w: unrecognized code", ErrInvalidInput)
	ErrDuplicateAttribute = fmt.Errorf("%w: attribute given more than once", ErrInvalidInput)
	ErrMissingAttribute   = fmt.Errorf("%w: missing attribute", ErrInvalidInput)
)

type code struct {
	attr  Attribute
	value int
}

// shorthand maps single-character codes to attribute values
var shorthand = map[string]code{
	"1": {AttrNumber, 0},
	"2": {AttrNumber, 1},
	"3": {AttrNumber, 2},
	"r": {AttrColor, int(Red)},
	"p": {AttrColor, int(Purple)},
	"g": {AttrColor, int(Green)},
	"o": {AttrShape, int(Oval)},
	"d": {AttrShape, int(Diamond)},
	"w": {AttrShape, int(Wave)},
	"f": {AttrPattern, int(Filled)},
	"s": {AttrPattern, int(Striped)},
	"e": {AttrPattern, int(Empty)},
}

// ParseError describes why a shorthand string did not name exactly one card
type ParseError struct {
	Input     string
	Unknown   []string    // tokens that match no code
	Duplicate []Attribute // categories given more than once
	Missing   []Attribute // categories never given
}

func (e *ParseError) Error() string {
	var parts []string
	if len(e.Unknown) > 0 {
		parts = append(parts, fmt.Sprintf("unrecognized code(s) %s", strings.Join(e.Unknown, ", ")))
	}
	if len(e.Duplicate) > 0 {
		parts = append(parts, fmt.Sprintf("%s given more than once", joinAttrs(e.Duplicate)))
	}
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing %s", joinAttrs(e.Missing)))
	}
	return fmt.Sprintf("invalid card %q: %s", e.Input, strings.Join(parts, "; "))
}

// Is lets errors.Is match the sentinel for each kind of failure present
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return true
	case ErrUnknownCode:
		return len(e.Unknown) > 0
	case ErrDuplicateAttribute:
		return len(e.Duplicate) > 0
	case ErrMissingAttribute:
		return len(e.Missing) > 0
	}
	return false
}

// Parse reads a card from shorthand such as "1frw" or "1, f, r, w".
// Input is case-insensitive and whitespace is ignored. Either a complete
// card is returned or a *ParseError; never a partially filled card.
func Parse(input string) (Card, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, input)

	var tokens []string
	if strings.Contains(cleaned, ",") {
		tokens = strings.Split(cleaned, ",")
	} else {
		tokens = strings.Split(cleaned, "")
	}

	var (
		c    Card
		seen [len(attrNames)]bool
		perr = &ParseError{Input: input}
	)
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		cd, ok := shorthand[tok]
		if !ok {
			perr.Unknown = append(perr.Unknown, tok)
			continue
		}
		if seen[cd.attr] {
			if !containsAttr(perr.Duplicate, cd.attr) {
				perr.Duplicate = append(perr.Duplicate, cd.attr)
			}
			continue
		}
		seen[cd.attr] = true
		c = c.With(cd.attr, cd.value)
	}

	for _, attr := range Attributes {
		if !seen[attr] {
			perr.Missing = append(perr.Missing, attr)
		}
	}

	if len(perr.Unknown) > 0 || len(perr.Duplicate) > 0 || len(perr.Missing) > 0 {
		return Card{}, perr
	}
	return c, nil
}

// MustParse is like Parse but panics on invalid input. Intended for tests
// and fixed tables.
func MustParse(input string) Card {
	c, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return c
}

// Shorthand returns the canonical code for a card: number, pattern, color,
// shape (e.g. "2spd")
func Shorthand(c Card) string {
	var sb strings.Builder
	for _, attr := range []Attribute{AttrNumber, AttrPattern, AttrColor, AttrShape} {
		for k, cd := range shorthand {
			if cd.attr == attr && cd.value == c.Value(attr) {
				sb.WriteString(k)
				break
			}
		}
	}
	return sb.String()
}

func joinAttrs(attrs []Attribute) string {
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}

func containsAttr(attrs []Attribute, a Attribute) bool {
	for _, x := range attrs {
		if x == a {
			return true
		}
	}
	return false
}
