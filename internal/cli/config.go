package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	Seed     string
	LogLevel string
	NoColor  bool
	Verbose  bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Seed:     getEnvOrDefault("CONNECTFOUR_SEED", "0"),
		LogLevel: getEnvOrDefault("CONNECTFOUR_LOG_LEVEL", "warn"),
		NoColor:  os.Getenv("NO_COLOR") != "",
		Verbose:  false,
	}
}

// ParsedSeed returns the random seed; 0 selects a non-deterministic generator
func (c *Config) ParsedSeed() (uint64, error) {
	seed, err := strconv.ParseUint(strings.TrimSpace(c.Seed), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: must be a non-negative integer", c.Seed)
	}
	return seed, nil
}

// Level returns the slog level to log at. Verbose forces debug.
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.LogLevel)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
