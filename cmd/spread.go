package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/settrainer/internal/card"
	"github.com/arcanaland/settrainer/internal/spread"
)

// spreadCmd represents the spread command
var spreadCmd = &cobra.Command{
	Use:   "spread",
	Short: "Deal a spread that contains at least one set",
	Long: `Spread deals distinct cards that are guaranteed to contain a set.
Use --solve to list every set in it.

Examples:
  settrainer spread
  settrainer spread --size 9 --solve`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}

		size, _ := cmd.Flags().GetInt("size")
		if size == 0 {
			size = e.cfg.SpreadSize
		}
		solve, _ := cmd.Flags().GetBool("solve")

		g := spread.New(e.rng, spread.WithAttempts(e.cfg.SearchAttempts))
		cards, err := g.Generate(size)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		e.renderer.Row(out, cards, positionLabels(len(cards)))
		if !solve {
			return nil
		}

		sets := spread.FindAll(cards)
		fmt.Fprintln(out)
		fmt.Fprintln(out, colorize.CyanString("%d set(s):", len(sets)))
		for i, set := range sets {
			fmt.Fprintf(out, "%d. %d %d %d: %s, %s, %s\n", i+1,
				set.Positions[0]+1, set.Positions[1]+1, set.Positions[2]+1,
				card.Describe(set.Cards[0]), card.Describe(set.Cards[1]), card.Describe(set.Cards[2]))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(spreadCmd)

	spreadCmd.Flags().IntP("size", "s", 0, "Number of cards to deal (default from config)")
	spreadCmd.Flags().Bool("solve", false, "List every set in the spread")
}
