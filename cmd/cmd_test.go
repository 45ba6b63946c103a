package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/settrainer/internal/card"
	"github.com/arcanaland/settrainer/internal/deck"
	"github.com/arcanaland/settrainer/internal/spread"
)

// run executes the root command with a fresh config directory and no colors
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return buf.String(), err
}

// firstRound replays the deal a session makes with the given seed
func firstRound(seed int64) card.Card {
	pair := deck.Sample(deck.NewRNG(seed), deck.All(), 2)
	return card.Third(pair[0], pair[1])
}

func TestThirdCommand(t *testing.T) {
	out, err := run(t, "", "third", "1fro", "1sro", "--seed", "1", "--color", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "Third card: 1 empty red oval (1ero)")
	assert.Contains(t, out, "1ero")

	_, err = run(t, "", "third", "1fro", "o,r,f,1", "--seed", "1")
	assert.Error(t, err)

	_, err = run(t, "", "third", "1fro", "1sr", "--seed", "1")
	assert.ErrorIs(t, err, card.ErrMissingAttribute)
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "", "validate", "1fro", "2spd", "3egw")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ The cards form a set.")

	out, err = run(t, "", "validate", "1fro", "2spd", "3erd")
	require.Error(t, err)
	assert.Contains(t, out, "1. color: two the same and one different")
	assert.Contains(t, out, "2. shape: two the same and one different")

	out, err = run(t, "", "validate", "1fro", "1sro", "2ero", "2fro")
	require.NoError(t, err)
	assert.Contains(t, out, "spread contains no set")
}

func TestPlayCorrectAnswer(t *testing.T) {
	answer := firstRound(5)
	out, err := run(t, card.Shorthand(answer)+"\nq\n",
		"play", "--seed", "5", "--color", "none", "--choices=false", "--challenge=false")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Correct! Well done!")
	assert.Contains(t, out, "Correct: 1  Incorrect: 0")
}

func TestPlayWrongAndInvalidAnswers(t *testing.T) {
	answer := firstRound(6)
	wrong := answer.With(card.AttrShape, (answer.Value(card.AttrShape)+1)%3)
	out, err := run(t, "1fr\n"+card.Shorthand(wrong)+"\n",
		"play", "--seed", "6", "--color", "none", "--choices=false", "--challenge=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid input")
	assert.Contains(t, out, "missing shape")
	assert.Contains(t, out, "✗ Incorrect. Here's the correct answer: "+card.Describe(answer))
	assert.Contains(t, out, "Correct: 0  Incorrect: 1")
}

func TestPlayChallenge(t *testing.T) {
	answer := firstRound(7)
	out, err := run(t, card.Shorthand(answer)+"\nq\n",
		"play", "--seed", "7", "--color", "none", "--choices=false", "--challenge", "--target", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Challenge started! Get 1 right")
	assert.Contains(t, out, "Challenge complete!")
	assert.Contains(t, out, "NEW RECORD!")
}

func TestPlayChoices(t *testing.T) {
	out, err := run(t, "99\nq\n",
		"play", "--seed", "8", "--color", "none", "--choices", "--challenge=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Which of these completes the set?")
	assert.Contains(t, out, "pick an option between 1 and")
}

func TestFindCommand(t *testing.T) {
	cards, err := spread.New(deck.NewRNG(3), spread.WithAttempts(100)).Generate(12)
	require.NoError(t, err)
	p := spread.FindAll(cards)[0].Positions

	in := fmt.Sprintf("h\n1 1 2\n%d,%d,%d\nq\n", p[0]+1, p[1]+1, p[2]+1)
	out, err := run(t, in, "find", "--seed", "3", "--size", "12", "--color", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "Try cards")
	assert.Contains(t, out, "Invalid input")
	assert.Contains(t, out, "✓ That's a set!")
	assert.Contains(t, out, "Correct: 1  Incorrect: 0")
}

func TestSpreadCommand(t *testing.T) {
	out, err := run(t, "", "spread", "--seed", "4", "--size", "9", "--solve", "--color", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "set(s):")
	assert.Contains(t, out, "1. ")

	_, err = run(t, "", "spread", "--size", "2")
	assert.ErrorIs(t, err, spread.ErrInvalidSize)
}

func TestDeckCommands(t *testing.T) {
	out, err := run(t, "", "deck", "ls", "--art=false")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 81)
	assert.Equal(t, " 1  1fro  1 filled red oval", lines[0])
	assert.Equal(t, "81  3egw  3 empty green waves", lines[80])

	out, err = run(t, "", "deck", "random", "-n", "3", "--seed", "2", "--color", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "╭")
}

func TestConfigCommands(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)

	RootCmd.SetArgs([]string{"config", "set", "spread_size", "15"})
	require.NoError(t, RootCmd.Execute())
	assert.Contains(t, buf.String(), "spread_size set to 15")

	buf.Reset()
	RootCmd.SetArgs([]string{"config", "show"})
	require.NoError(t, RootCmd.Execute())
	assert.Contains(t, buf.String(), "spread_size = 15")

	RootCmd.SetArgs([]string{"config", "set", "colour", "none"})
	assert.Error(t, RootCmd.Execute())
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "", "show", "2spd", "--color", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "2 striped purple diamonds")
	assert.Contains(t, out, "Index:   ")
}
