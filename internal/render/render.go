package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/arcanaland/settrainer/internal/card"
)

// ColorMode selects how card colors reach the terminal
type ColorMode int

const (
	ModeNone ColorMode = iota
	ModeBasic
	ModeTrueColor
)

// palette holds the card colors as hex values for truecolor output
var palette = map[card.Color]string{
	card.Red:    "#e53e3e",
	card.Purple: "#805ad5",
	card.Green:  "#38a169",
}

// basic maps card colors to the nearest 16-color attribute
var basic = map[card.Color]colorize.Attribute{
	card.Red:    colorize.FgRed,
	card.Purple: colorize.FgMagenta,
	card.Green:  colorize.FgGreen,
}

// glyphs is indexed by shape, then pattern
var glyphs = [3][3]string{
	{"●", "◍", "○"}, // oval
	{"◆", "◈", "◇"}, // diamond
	{"▲", "◭", "△"}, // wave
}

const (
	cardInner = 11
	cardWidth = cardInner + 2
	gutter    = 2
)

// ParseColorMode maps a config value to a mode. "auto" picks truecolor or
// basic on a terminal, honoring NO_COLOR and COLORTERM, and none otherwise.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "none":
		return ModeNone, nil
	case "basic":
		return ModeBasic, nil
	case "truecolor":
		return ModeTrueColor, nil
	case "auto", "":
		return detect(), nil
	}
	return ModeNone, fmt.Errorf("unknown color mode %q", s)
}

func detect() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ModeNone
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ModeNone
	}
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ModeTrueColor
	}
	return ModeBasic
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// Renderer draws cards as text
type Renderer struct {
	Mode  ColorMode
	Width int
}

func New(mode ColorMode, width int) *Renderer {
	return &Renderer{Mode: mode, Width: width}
}

// Paint colors s with a card color according to the mode
func (r *Renderer) Paint(c card.Color, s string) string {
	switch r.Mode {
	case ModeBasic:
		p := colorize.New(basic[c])
		p.EnableColor()
		return p.Sprint(s)
	case ModeTrueColor:
		col, err := colorful.Hex(palette[c])
		if err != nil {
			return s
		}
		red, green, blue := col.RGB255()
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", red, green, blue, s)
	}
	return s
}

// Card returns the lines of a boxed card
func (r *Renderer) Card(c card.Card) []string {
	symbols := make([]string, int(c.Number))
	for i := range symbols {
		symbols[i] = glyphs[c.Shape][c.Pattern]
	}
	art := r.Paint(c.Color, strings.Join(symbols, " "))

	return []string{
		"╭" + strings.Repeat("─", cardInner) + "╮",
		"│" + strings.Repeat(" ", cardInner) + "│",
		"│" + center(art, cardInner) + "│",
		"│" + strings.Repeat(" ", cardInner) + "│",
		"│" + center(card.Shorthand(c), cardInner) + "│",
		"╰" + strings.Repeat("─", cardInner) + "╯",
	}
}

// Row writes cards side by side, wrapping to the renderer width. labels,
// when given, are centered under each card.
func (r *Renderer) Row(w io.Writer, cards []card.Card, labels []string) {
	perRow := (r.Width + gutter) / (cardWidth + gutter)
	if perRow < 1 {
		perRow = 1
	}

	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}

		drawn := make([][]string, 0, end-start)
		for _, c := range cards[start:end] {
			drawn = append(drawn, r.Card(c))
		}
		for line := range drawn[0] {
			parts := make([]string, len(drawn))
			for i, d := range drawn {
				parts[i] = d[line]
			}
			fmt.Fprintln(w, strings.Join(parts, strings.Repeat(" ", gutter)))
		}

		if labels != nil {
			parts := make([]string, 0, end-start)
			for i := start; i < end; i++ {
				label := ""
				if i < len(labels) {
					label = labels[i]
				}
				parts = append(parts, center(label, cardWidth))
			}
			fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, strings.Repeat(" ", gutter)), " "))
		}
	}
}

// Describe returns the card description with the color word painted
func (r *Renderer) Describe(c card.Card) string {
	noun := c.Shape.String()
	if c.Number > 1 {
		noun += "s"
	}
	return fmt.Sprintf("%d %s %s %s", int(c.Number), c.Pattern, r.Paint(c.Color, c.Color.String()), noun)
}

// VisibleWidth is the number of runes in s once ANSI escapes are removed
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(StripAnsi(s))
}

// StripAnsi removes ANSI escape sequences from a string
func StripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// center pads s with spaces to width, using its visible width
func center(s string, width int) string {
	pad := width - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
