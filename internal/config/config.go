package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"k8s.io/klog/v2"
)

// ErrUnknownKey is returned by Set for keys the config does not have
var ErrUnknownKey = errors.New("unknown config key")

// Config represents the application configuration
type Config struct {
	SpreadSize      int    `toml:"spread_size"`
	OptionCount     int    `toml:"option_count"`
	ChallengeTarget int    `toml:"challenge_target"`
	ColorMode       string `toml:"color_mode"`
	SearchAttempts  int    `toml:"search_attempts"`
	Seed            int64  `toml:"seed"` // 0 seeds from the clock
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		SpreadSize:      12,
		OptionCount:     11,
		ChallengeTarget: 10,
		ColorMode:       "auto",
		SearchAttempts:  100,
	}
}

// ColorModes lists the accepted values of color_mode
var ColorModes = []string{"auto", "none", "basic", "truecolor"}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "settrainer", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if needed.
// Keys missing from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	klog.V(1).Infof("Created default config at %s", GetConfigFilePath())
	return config, nil
}

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Validate checks every field is usable
func (c *Config) Validate() error {
	switch {
	case c.SpreadSize < 3 || c.SpreadSize > 81:
		return fmt.Errorf("spread_size must be between 3 and 81, got %d", c.SpreadSize)
	case c.OptionCount < 0:
		return fmt.Errorf("option_count must not be negative, got %d", c.OptionCount)
	case c.ChallengeTarget < 1:
		return fmt.Errorf("challenge_target must be positive, got %d", c.ChallengeTarget)
	case c.SearchAttempts < 0:
		return fmt.Errorf("search_attempts must not be negative, got %d", c.SearchAttempts)
	case !contains(ColorModes, c.ColorMode):
		return fmt.Errorf("color_mode must be one of %s, got %q", strings.Join(ColorModes, ", "), c.ColorMode)
	}
	return nil
}

// Keys returns the names accepted by Set
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var setters = map[string]func(c *Config, value string) error{
	"spread_size":      intSetter(func(c *Config, v int) { c.SpreadSize = v }),
	"option_count":     intSetter(func(c *Config, v int) { c.OptionCount = v }),
	"challenge_target": intSetter(func(c *Config, v int) { c.ChallengeTarget = v }),
	"search_attempts":  intSetter(func(c *Config, v int) { c.SearchAttempts = v }),
	"color_mode": func(c *Config, value string) error {
		c.ColorMode = strings.ToLower(value)
		return nil
	},
	"seed": func(c *Config, value string) error {
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be an integer: %w", err)
		}
		c.Seed = v
		return nil
	},
}

func intSetter(set func(*Config, int)) func(*Config, string) error {
	return func(c *Config, value string) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("expected an integer: %w", err)
		}
		set(c, v)
		return nil
	}
}

// Set updates one key in the config file
func Set(key, value string) error {
	setter, ok := setters[key]
	if !ok {
		return fmt.Errorf("%w: %s (valid keys: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}
	if err := setter(config, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	return SaveConfig(config)
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
