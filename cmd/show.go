package cmd

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/settrainer/internal/card"
	"github.com/arcanaland/settrainer/internal/deck"
	"github.com/arcanaland/settrainer/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display a card with its attributes",
	Long: `Show draws a card next to its attributes and shorthand code.

Examples:
  settrainer show 2spd
  settrainer show "3, e, g, w"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}

		displayCard(cmd.OutOrStdout(), e.renderer, c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// displayCard prints the card art on the left and its info on the right
func displayCard(out io.Writer, r *render.Renderer, c card.Card) {
	art := r.Card(c)
	maxArtWidth := 0
	for _, line := range art {
		if w := render.VisibleWidth(line); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	infoLines := []string{
		colorize.CyanString("Card:    ") + colorize.HiWhiteString("%s", card.Describe(c)),
		colorize.CyanString("Code:    ") + colorize.HiWhiteString("%s", card.Shorthand(c)),
		colorize.CyanString("Number:  ") + colorize.HiWhiteString("%s", c.Number),
		colorize.CyanString("Color:   ") + r.Paint(c.Color, c.Color.String()),
		colorize.CyanString("Shape:   ") + colorize.HiWhiteString("%s", c.Shape),
		colorize.CyanString("Pattern: ") + colorize.HiWhiteString("%s", c.Pattern),
		colorize.CyanString("Index:   ") + colorize.HiWhiteString("%d of %d", deck.Index(c)+1, deck.Size),
	}

	spacing := 4
	infoStartCol := maxArtWidth + spacing

	fmt.Fprintln(out)
	maxLines := max(len(art), len(infoLines))
	for i := 0; i < maxLines; i++ {
		// Print 2-character wide left padding
		fmt.Fprint(out, "  ")
		if i < len(art) {
			fmt.Fprint(out, art[i])
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol-render.VisibleWidth(art[i])))
		} else {
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(out, infoLines[i])
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
}
