package card

import "fmt"

// Number is how many shapes are printed on a card (1, 2 or 3)
type Number int

// Color of the shapes on a card
type Color int

// Shape of the symbols on a card
type Shape int

// Pattern is the fill of the shapes on a card
type Pattern int

const (
	One   Number = 1
	Two   Number = 2
	Three Number = 3
)

const (
	Red Color = iota
	Purple
	Green
)

const (
	Oval Shape = iota
	Diamond
	Wave
)

const (
	Filled Pattern = iota
	Striped
	Empty
)

// Attribute domains in their fixed iteration order
var (
	Numbers  = []Number{One, Two, Three}
	Colors   = []Color{Red, Purple, Green}
	Shapes   = []Shape{Oval, Diamond, Wave}
	Patterns = []Pattern{Filled, Striped, Empty}
)

// Card represents a Set card. Two cards are the same card iff all four
// attributes match, so Card is compared with ==.
type Card struct {
	Number  Number
	Color   Color
	Shape   Shape
	Pattern Pattern
}

// Attribute identifies one of the four card categories
type Attribute int

const (
	AttrNumber Attribute = iota
	AttrColor
	AttrShape
	AttrPattern
)

// Attributes lists every category in a fixed order
var Attributes = []Attribute{AttrNumber, AttrColor, AttrShape, AttrPattern}

// domainSize is the number of values every attribute can take
const domainSize = 3

var (
	colorNames   = [...]string{"red", "purple", "green"}
	shapeNames   = [...]string{"oval", "diamond", "wave"}
	patternNames = [...]string{"filled", "striped", "empty"}
	attrNames    = [...]string{"number", "color", "shape", "pattern"}
)

func (n Number) String() string {
	return fmt.Sprintf("%d", int(n))
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

func (p Pattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return patternNames[p]
}

func (a Attribute) String() string {
	if a < 0 || int(a) >= len(attrNames) {
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
	return attrNames[a]
}

// Value returns the index of the card's value for attr within its domain (0-2)
func (c Card) Value(attr Attribute) int {
	switch attr {
	case AttrNumber:
		return int(c.Number) - 1
	case AttrColor:
		return int(c.Color)
	case AttrShape:
		return int(c.Shape)
	case AttrPattern:
		return int(c.Pattern)
	}
	panic(fmt.Sprintf("card: unknown attribute %d", int(attr)))
}

// With returns a copy of the card with attr set to the domain value at index v
func (c Card) With(attr Attribute, v int) Card {
	switch attr {
	case AttrNumber:
		c.Number = Number(v + 1)
	case AttrColor:
		c.Color = Color(v)
	case AttrShape:
		c.Shape = Shape(v)
	case AttrPattern:
		c.Pattern = Pattern(v)
	default:
		panic(fmt.Sprintf("card: unknown attribute %d", int(attr)))
	}
	return c
}

// Valid reports whether every attribute holds a value from its domain.
// The zero Card is not valid since it has no shapes.
func (c Card) Valid() bool {
	for _, attr := range Attributes {
		if v := c.Value(attr); v < 0 || v >= domainSize {
			return false
		}
	}
	return true
}

func (c Card) String() string {
	return Describe(c)
}

// Describe returns a human readable name like "2 striped purple diamonds"
func Describe(c Card) string {
	noun := c.Shape.String()
	if c.Number > 1 {
		noun += "s"
	}
	return fmt.Sprintf("%d %s %s %s", int(c.Number), c.Pattern, c.Color, noun)
}
