package card_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/settrainer/internal/card"
)

// every enumerates the 81 cards without going through the deck package
func every() []card.Card {
	var out []card.Card
	for _, n := range card.Numbers {
		for _, c := range card.Colors {
			for _, s := range card.Shapes {
				for _, p := range card.Patterns {
					out = append(out, card.Card{Number: n, Color: c, Shape: s, Pattern: p})
				}
			}
		}
	}
	return out
}

func TestThirdCompletesSet(t *testing.T) {
	cards := every()
	for _, a := range cards {
		for _, b := range cards {
			c := card.Third(a, b)
			require.True(t, c.Valid(), "Third(%v, %v) = %v is not a valid card", a, b, c)
			require.Equal(t, c, card.Third(b, a), "Third must be symmetric for %v, %v", a, b)
			if a != b {
				require.True(t, card.IsSet(a, b, c), "%v, %v, %v should be a set", a, b, c)
				require.NotEqual(t, a, c)
				require.NotEqual(t, b, c)
			} else {
				require.Equal(t, a, c, "Third of a card with itself is the card")
			}
		}
	}
}

func TestThirdPerAttribute(t *testing.T) {
	for _, attr := range card.Attributes {
		for v1 := 0; v1 < 3; v1++ {
			for v2 := 0; v2 < 3; v2++ {
				a := card.MustParse("1fro").With(attr, v1)
				b := card.MustParse("1fro").With(attr, v2)
				got := card.Third(a, b).Value(attr)
				if v1 == v2 {
					assert.Equal(t, v1, got, "%s: equal values must be kept", attr)
				} else {
					assert.NotEqual(t, v1, got, "%s", attr)
					assert.NotEqual(t, v2, got, "%s", attr)
				}
			}
		}
	}
}

func TestThirdExample(t *testing.T) {
	a := card.Card{Number: card.One, Color: card.Red, Shape: card.Oval, Pattern: card.Filled}
	b := card.Card{Number: card.One, Color: card.Red, Shape: card.Oval, Pattern: card.Striped}
	want := card.Card{Number: card.One, Color: card.Red, Shape: card.Oval, Pattern: card.Empty}
	assert.Equal(t, want, card.Third(a, b))
}

func TestIsSet(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c string
		want    bool
	}{
		{"all same but pattern", "1fro", "1sro", "1ero", true},
		{"all different", "1fro", "2spd", "3egw", true},
		{"two colors equal", "1fro", "2spd", "3erw", false},
		{"two numbers equal", "1fro", "1spd", "3egw", false},
		{"two shapes equal", "1fro", "2spo", "3egw", false},
		{"two patterns equal", "1fro", "2fpd", "3egw", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, c := card.MustParse(tt.a), card.MustParse(tt.b), card.MustParse(tt.c)
			assert.Equal(t, tt.want, card.IsSet(a, b, c))
			assert.Equal(t, tt.want, len(card.Violations(a, b, c)) == 0)
		})
	}
}

func TestIsSetRejectsSingleTwoOfAKind(t *testing.T) {
	base := []card.Card{card.MustParse("1fro"), card.MustParse("2spd"), card.MustParse("3egw")}
	for _, attr := range card.Attributes {
		c := base[2].With(attr, base[1].Value(attr))
		assert.False(t, card.IsSet(base[0], base[1], c), "%s with two equal values must be rejected", attr)
		assert.Equal(t, []card.Attribute{attr}, card.Violations(base[0], base[1], c))
	}
}

func TestShared(t *testing.T) {
	a := card.MustParse("2spd")
	b := card.MustParse("2epd")
	assert.Equal(t, []card.Attribute{card.AttrNumber, card.AttrColor, card.AttrShape}, card.Shared(a, b))
	assert.Empty(t, card.Shared(card.MustParse("1fro"), card.MustParse("2spd")))
}

func TestEqual(t *testing.T) {
	assert.True(t, card.Equal(card.MustParse("1frw"), card.MustParse("w,r,f,1")))
	assert.False(t, card.Equal(card.MustParse("1frw"), card.MustParse("1frd")))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "2 striped purple diamonds",
		card.Describe(card.Card{Number: card.Two, Color: card.Purple, Shape: card.Diamond, Pattern: card.Striped}))
	assert.Equal(t, "1 filled red wave", card.Describe(card.MustParse("1frw")))
	assert.Equal(t, "3 empty green ovals", card.MustParse("3ego").String())
}

func TestParse(t *testing.T) {
	want := card.Card{Number: card.One, Pattern: card.Filled, Color: card.Red, Shape: card.Wave}
	for _, in := range []string{"1frw", "1,f,r,w", " 1 F R W ", "W,R,F,1", "1,,f,r,w,"} {
		got, err := card.Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in      string
		kind    error
		missing []card.Attribute
	}{
		{"1,f,r", card.ErrMissingAttribute, []card.Attribute{card.AttrShape}},
		{"", card.ErrMissingAttribute, card.Attributes},
		{"1frwx", card.ErrUnknownCode, nil},
		{"1,fr,w", card.ErrUnknownCode, []card.Attribute{card.AttrColor, card.AttrPattern}},
		{"12frw", card.ErrDuplicateAttribute, nil},
		{"1frwf", card.ErrDuplicateAttribute, nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := card.Parse(tt.in)
			require.Error(t, err)
			assert.Equal(t, card.Card{}, c, "failed parse must not return a partial card")
			assert.True(t, errors.Is(err, card.ErrInvalidInput))
			assert.True(t, errors.Is(err, tt.kind), "want %v, got %v", tt.kind, err)

			var perr *card.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.missing, perr.Missing)
		})
	}
}

func TestShorthandRoundTrip(t *testing.T) {
	for _, c := range every() {
		code := card.Shorthand(c)
		require.Len(t, code, 4)
		got, err := card.Parse(code)
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
	assert.Equal(t, "2spd", card.Shorthand(card.MustParse("d,p,s,2")))
}

func TestValid(t *testing.T) {
	assert.False(t, card.Card{}.Valid(), "zero card has no shapes")
	assert.True(t, card.MustParse("3egw").Valid())
	assert.False(t, card.Card{Number: card.One, Color: 5}.Valid())
}
