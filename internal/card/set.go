package card

// remaining returns the domain index that differs from both a and b.
// Indices are 0, 1 and 2, so the three always sum to 3.
func remaining(a, b int) int {
	if a == b {
		return a
	}
	return domainSize - a - b
}

// Third returns the card that completes a set with a and b. For each
// attribute it keeps the value when a and b agree and otherwise takes the
// value neither of them has.
func Third(a, b Card) Card {
	var c Card
	for _, attr := range Attributes {
		c = c.With(attr, remaining(a.Value(attr), b.Value(attr)))
	}
	return c
}

// IsSet reports whether a, b and c form a valid set: on every attribute the
// three values are either all equal or all different.
func IsSet(a, b, c Card) bool {
	for _, attr := range Attributes {
		if distinct(a.Value(attr), b.Value(attr), c.Value(attr)) == 2 {
			return false
		}
	}
	return true
}

// Violations lists the attributes on which exactly two of the three cards
// agree. The triple is a set iff the result is empty.
func Violations(a, b, c Card) []Attribute {
	var out []Attribute
	for _, attr := range Attributes {
		if distinct(a.Value(attr), b.Value(attr), c.Value(attr)) == 2 {
			out = append(out, attr)
		}
	}
	return out
}

// Shared lists the attributes on which a and b hold the same value
func Shared(a, b Card) []Attribute {
	var out []Attribute
	for _, attr := range Attributes {
		if a.Value(attr) == b.Value(attr) {
			out = append(out, attr)
		}
	}
	return out
}

// Equal compares two cards attribute by attribute
func Equal(a, b Card) bool {
	return a.Number == b.Number &&
		a.Color == b.Color &&
		a.Shape == b.Shape &&
		a.Pattern == b.Pattern
}

func distinct(x, y, z int) int {
	switch {
	case x == y && y == z:
		return 1
	case x == y || y == z || x == z:
		return 2
	default:
		return 3
	}
}
