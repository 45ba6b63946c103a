package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/settrainer/internal/card"
	"github.com/arcanaland/settrainer/internal/render"
	"github.com/arcanaland/settrainer/internal/session"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find a set in a spread of cards",
	Long: `Find deals a spread that always contains at least one set. Type the
positions of three cards that form a set, for example "1 5 9".

Type h for a hint, n for a new spread or q to quit.`,
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

		s := session.New(e.rng, session.WithSpreadAttempts(e.cfg.SearchAttempts))
		sr, err := s.NewSpreadRound(size)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		in := bufio.NewScanner(cmd.InOrStdin())
		redraw := true
		for {
			if redraw {
				showSpread(out, e.renderer, sr)
			}
			redraw = false
			fmt.Fprint(out, "> ")
			if !in.Scan() {
				fmt.Fprintln(out)
				break
			}

			line := strings.TrimSpace(in.Text())
			switch strings.ToLower(line) {
			case "":
				continue
			case "q", "quit":
				printStats(out, s.Stats)
				return in.Err()
			case "h", "hint":
				hint, err := s.Hint()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Try cards %d and %d.\n", hint.Positions[0]+1, hint.Positions[1]+1)
				continue
			case "n", "new":
				if sr, err = s.NewSpreadRound(size); err != nil {
					return err
				}
				redraw = true
				continue
			}

			picks, err := readPositions(line)
			if err != nil {
				fmt.Fprintln(out, colorize.RedString("Invalid input: %v", err))
				continue
			}
			res, err := s.SubmitSet(picks[0]-1, picks[1]-1, picks[2]-1)
			if errors.Is(err, session.ErrBadPosition) {
				fmt.Fprintln(out, colorize.RedString("Invalid input: %v", err))
				continue
			}
			if err != nil {
				return err
			}

			if res.Correct {
				fmt.Fprintln(out, colorize.GreenString("✓ That's a set!"))
			} else {
				a, b, c := sr.Cards[picks[0]-1], sr.Cards[picks[1]-1], sr.Cards[picks[2]-1]
				fmt.Fprintln(out, colorize.RedString("✗ Not a set:"))
				for _, attr := range card.Violations(a, b, c) {
					fmt.Fprintf(out, "  %s: two the same and one different\n", attr)
				}
			}

			if sr, err = s.NewSpreadRound(size); err != nil {
				return err
			}
			redraw = true
		}

		printStats(out, s.Stats)
		return in.Err()
	},
}

func init() {
	RootCmd.AddCommand(findCmd)

	findCmd.Flags().IntP("size", "s", 0, "Number of cards to deal (default from config)")
}

func showSpread(out io.Writer, r *render.Renderer, sr session.SpreadRound) {
	fmt.Fprintln(out)
	r.Row(out, sr.Cards, positionLabels(len(sr.Cards)))
	fmt.Fprintf(out, "Find a set (%d in this spread).\n", len(sr.Sets))
}

// readPositions parses three 1-based positions separated by spaces or commas
func readPositions(line string) ([3]int, error) {
	var picks [3]int
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 3 {
		return picks, fmt.Errorf("expected three card positions, got %d", len(fields))
	}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return picks, fmt.Errorf("%q is not a card position", f)
		}
		picks[i] = n
	}
	return picks, nil
}
