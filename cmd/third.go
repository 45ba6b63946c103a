package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/settrainer/internal/card"
)

// thirdCmd represents the third command
var thirdCmd = &cobra.Command{
	Use:   "third [card] [card]",
	Short: "Show the card that completes a set with two others",
	Long: `Third computes the only card that forms a set with the two given cards.

Examples:
  settrainer third 1fro 1sro
  settrainer third 2,s,p,d 3,e,g,w`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := card.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := card.Parse(args[1])
		if err != nil {
			return err
		}
		if card.Equal(a, b) {
			return fmt.Errorf("both cards are %s; a set needs three different cards", card.Shorthand(a))
		}

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}

		c := card.Third(a, b)
		out := cmd.OutOrStdout()
		e.renderer.Row(out, []card.Card{a, b, c}, []string{"1", "2", "third"})
		fmt.Fprintln(out)
		fmt.Fprintln(out, colorize.CyanString("Third card: ")+e.renderer.Describe(c)+" ("+card.Shorthand(c)+")")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(thirdCmd)
}
