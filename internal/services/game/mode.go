package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/services/player"
)

// Menu lines written during mode selection
const (
	ModePromptLine  = "Enter your choice (1 or 2):"
	ModeInvalidLine = "Invalid input. Please enter 1 or 2."
)

// SelectMode shows the mode menu and creates the two players. Player one
// always holds TokenA; player two holds TokenB.
func (c *Controller) SelectMode() (player.Player, player.Player, error) {
	if c.state != model.GameStateSelectingMode {
		return nil, nil, fmt.Errorf("cannot select mode in state %s", c.state)
	}

	c.output.WriteLine("Choose game mode:")
	c.output.WriteLine("1. Play against the computer")
	c.output.WriteLine("2. Play with two human players")

	mode, err := c.readMode()
	if err != nil {
		return nil, nil, err
	}

	var first, second player.Player
	switch mode {
	case model.GameModeVsComputer:
		first = player.NewHuman(model.DefaultPlayerOneName, model.TokenA, c.input, c.output)
		second = player.NewComputer(model.ComputerName, model.TokenB, c.random)
	case model.GameModeTwoHumans:
		name1, err := c.readName("Player 1, enter your name:", model.DefaultPlayerOneName)
		if err != nil {
			return nil, nil, err
		}
		name2, err := c.readName("Player 2, enter your name:", model.DefaultPlayerTwoName)
		if err != nil {
			return nil, nil, err
		}
		first = player.NewHuman(name1, model.TokenA, c.input, c.output)
		second = player.NewHuman(name2, model.TokenB, c.input, c.output)
	}

	c.logger.Info("mode selected",
		slog.Int("mode", int(mode)),
		slog.String("player_one", first.Name()),
		slog.String("player_two", second.Name()),
	)

	return first, second, nil
}

// readMode prompts until 1 or 2 is entered
func (c *Controller) readMode() (model.GameMode, error) {
	for {
		c.output.WriteLine(ModePromptLine)

		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		mode, err := ParseMode(line)
		if err == nil {
			return mode, nil
		}
		c.output.WriteLine(ModeInvalidLine)
	}
}

// readName prompts once for a name, using fallback for a blank answer
func (c *Controller) readName(prompt, fallback string) (string, error) {
	c.output.WriteLine(prompt)

	name, err := c.readLine()
	if err != nil {
		return "", err
	}
	if name == "" {
		return fallback, nil
	}
	return name, nil
}

func (c *Controller) readLine() (string, error) {
	line, err := c.input.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", model.ErrInputExhausted
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

// ParseMode converts a menu answer into a GameMode
func ParseMode(line string) (model.GameMode, error) {
	choice, err := strconv.Atoi(line)
	if err != nil {
		return 0, model.ErrInvalidMode
	}
	switch mode := model.GameMode(choice); mode {
	case model.GameModeVsComputer, model.GameModeTwoHumans:
		return mode, nil
	default:
		return 0, model.ErrInvalidMode
	}
}
