package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/connectfour/internal/dependencies/console"
	"github.com/mcoot/connectfour/internal/dependencies/random"
	"github.com/mcoot/connectfour/internal/services/game"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Input  console.Input
	Output console.Output
	Random random.Random

	// Services
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Input is where player answers are read from (required)
	Input io.Reader
	// Output is where the game is displayed (required)
	Output io.Writer
	// Seed fixes the computer player's random sequence (optional)
	// If zero, a crypto-backed generator is used
	Seed uint64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if cfg.Input == nil {
		return nil, errors.New("Input required")
	}
	if cfg.Output == nil {
		return nil, errors.New("Output required")
	}

	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var rnd random.Random
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	} else {
		rnd = random.New()
	}

	return newWithDependencies(console.NewLineReader(cfg.Input), console.NewLineWriter(cfg.Output), rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(input console.Input, output console.Output, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Input:          input,
		Output:         output,
		Random:         rnd,
		GameController: game.NewController(input, output, rnd, logger),
	}
}
