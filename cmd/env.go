package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/arcanaland/settrainer/internal/config"
	"github.com/arcanaland/settrainer/internal/deck"
	"github.com/arcanaland/settrainer/internal/render"
)

// env bundles what every command needs: config, randomness and a renderer
type env struct {
	cfg      *config.Config
	rng      *rand.Rand
	renderer *render.Renderer
}

// loadEnv reads the config and applies the persistent flags on top of it
func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	klog.V(2).Infof("Using seed %d", seed)

	colorMode := cfg.ColorMode
	if flagMode, _ := cmd.Flags().GetString("color"); flagMode != "" {
		colorMode = flagMode
	}
	mode, err := render.ParseColorMode(colorMode)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:      cfg,
		rng:      deck.NewRNG(seed),
		renderer: render.New(mode, render.TerminalWidth()),
	}, nil
}

// positionLabels numbers cards from 1 for display
func positionLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+1)
	}
	return labels
}
