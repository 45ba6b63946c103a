package cmd

import (
	"bufio"
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

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Find the card that completes a set",
	Long: `Play deals two cards at a time. Type the card that completes the set in
shorthand (for example 1frw or 1,f,r,w). With --choices, pick the number of
one of the offered cards instead.

Type n for new cards or q to quit.

Use --challenge to race against the clock: get --target answers right in a
row as fast as you can. One mistake ends the challenge.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}

		choices, _ := cmd.Flags().GetBool("choices")
		challenge, _ := cmd.Flags().GetBool("challenge")
		target, _ := cmd.Flags().GetInt("target")
		if target == 0 {
			target = e.cfg.ChallengeTarget
		}

		var opts []session.Option
		if choices {
			opts = append(opts, session.WithChoices(e.cfg.OptionCount))
		}
		s := session.New(e.rng, opts...)

		out := cmd.OutOrStdout()
		var round session.Round
		if challenge {
			round, err = s.StartChallenge(target)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, colorize.CyanString("⏱️  Challenge started! Get %d right as fast as you can.", target))
		} else {
			round = s.NewRound()
		}

		in := bufio.NewScanner(cmd.InOrStdin())
		redraw := true
		for {
			if redraw {
				showRound(out, e.renderer, round)
			}
			redraw = true
			fmt.Fprint(out, "> ")
			if !in.Scan() {
				fmt.Fprintln(out)
				break
			}

			line := strings.TrimSpace(in.Text())
			switch strings.ToLower(line) {
			case "":
				redraw = false
				continue
			case "q", "quit":
				printStats(out, s.Stats)
				return in.Err()
			case "n", "new":
				round = s.NewRound()
				continue
			}

			guess, err := readGuess(line, round)
			if err != nil {
				fmt.Fprintln(out, colorize.RedString("Invalid input: %v", err))
				fmt.Fprintln(out, "Use the format 1,f,r,w or 1frw.")
				redraw = false
				continue
			}

			res, err := s.Submit(guess)
			if err != nil {
				return err
			}
			reportAnswer(out, e.renderer, res)
			round = s.NewRound()
		}

		printStats(out, s.Stats)
		return in.Err()
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Bool("choices", false, "Offer multiple choice answers")
	playCmd.Flags().Bool("challenge", false, "Start a timed challenge")
	playCmd.Flags().Int("target", 0, "Correct answers needed to finish a challenge (default from config)")
}

// showRound draws the two shown cards and, in multiple choice, the options
func showRound(out io.Writer, r *render.Renderer, round session.Round) {
	fmt.Fprintln(out)
	r.Row(out, round.Shown[:], []string{"1", "2"})
	if len(round.Options) == 0 {
		fmt.Fprintln(out, "Which card completes the set?")
		return
	}
	fmt.Fprintln(out, "\nWhich of these completes the set?")
	r.Row(out, round.Options, positionLabels(len(round.Options)))
}

// readGuess accepts an option number when options are offered, and card
// shorthand otherwise
func readGuess(line string, round session.Round) (card.Card, error) {
	if len(round.Options) > 0 {
		if n, err := strconv.Atoi(line); err == nil {
			if n < 1 || n > len(round.Options) {
				return card.Card{}, fmt.Errorf("pick an option between 1 and %d", len(round.Options))
			}
			return round.Options[n-1], nil
		}
	}
	return card.Parse(line)
}

func reportAnswer(out io.Writer, r *render.Renderer, res session.Result) {
	if res.Correct {
		fmt.Fprintln(out, colorize.GreenString("✓ Correct! Well done!"))
	} else {
		fmt.Fprintln(out, colorize.RedString("✗ Incorrect. Here's the correct answer: ")+
			r.Describe(res.Answer)+" ("+card.Shorthand(res.Answer)+")")
	}

	switch {
	case res.ChallengeFailed:
		fmt.Fprintln(out, colorize.RedString("✗ Challenge failed after %d correct.", res.Progress))
	case res.ChallengeComplete:
		msg := fmt.Sprintf("🎉 Challenge complete! Time: %.2fs", res.Elapsed.Seconds())
		if res.NewRecord {
			msg += " - NEW RECORD! 🏆"
		} else {
			msg += fmt.Sprintf(" (Best: %.2fs)", res.Best.Seconds())
		}
		fmt.Fprintln(out, colorize.YellowString("%s", msg))
	case res.Progress > 0:
		fmt.Fprintf(out, "Progress: %d\n", res.Progress)
	}
}

func printStats(out io.Writer, stats session.Stats) {
	fmt.Fprintf(out, "Correct: %d  Incorrect: %d\n", stats.Correct, stats.Incorrect)
}
