package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/settrainer/internal/card"
	"github.com/arcanaland/settrainer/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [card] [card] [card]...",
	Short: "Check whether cards form a set, or find the sets in a spread",
	Long: `Validate checks three cards against the set rule and explains every
attribute that breaks it. Given more than three cards it lists every set in
the spread.`,
	Args: cobra.RangeArgs(3, 81),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := validator.NewValidator(args)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if !results.Valid() {
			fmt.Fprintf(out, "❌ %d problem(s):\n", len(results.Errors))
			for i, msg := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, msg)
			}
			return fmt.Errorf("validation failed")
		}

		if len(args) == 3 {
			fmt.Fprintln(out, "✅ The cards form a set.")
		} else {
			fmt.Fprintf(out, "✅ %d set(s) among %d cards:\n", len(results.Sets), len(results.Cards))
			for i, set := range results.Sets {
				fmt.Fprintf(out, "%d. %d %d %d: %s %s %s\n", i+1,
					set.Positions[0]+1, set.Positions[1]+1, set.Positions[2]+1,
					card.Shorthand(set.Cards[0]), card.Shorthand(set.Cards[1]), card.Shorthand(set.Cards[2]))
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
