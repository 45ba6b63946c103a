package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/settrainer/internal/card"
	"github.com/arcanaland/settrainer/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Browse the 81-card deck",
	Long:  `Commands for listing the deck and drawing random cards from it.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every card in the deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		art, _ := cmd.Flags().GetBool("art")
		if art {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			all := deck.All()
			e.renderer.Row(out, all, positionLabels(len(all)))
			return nil
		}

		for i, c := range deck.All() {
			fmt.Fprintf(out, "%2d  %s  %s\n", i+1, card.Shorthand(c), card.Describe(c))
		}
		return nil
	},
}

// deckRandomCmd represents the deck random command
var deckRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Draw random cards, each attribute picked independently",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("count must be positive, got %d", count)
		}

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}

		cards := make([]card.Card, count)
		for i := range cards {
			cards[i] = deck.Random(e.rng)
		}
		out := cmd.OutOrStdout()
		e.renderer.Row(out, cards, nil)
		for _, c := range cards {
			fmt.Fprintf(out, "%s  %s\n", card.Shorthand(c), e.renderer.Describe(c))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckRandomCmd)

	deckListCmd.Flags().Bool("art", false, "Draw the cards instead of listing codes")
	deckRandomCmd.Flags().IntP("count", "n", 1, "Number of cards to draw")
}
