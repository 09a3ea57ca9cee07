package game

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/connectfour/internal/dependencies/console"
	"github.com/mcoot/connectfour/internal/dependencies/random"
	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/services/player"
)

// Display lines written by the controller
const (
	TitleLine      = "Connect Four"
	BoardTitleLine = "Current board:"
	DrawLine       = "It's a draw!"
)

// Controller manages the game state machine and turn flow
type Controller struct {
	input  console.Input
	output console.Output
	random random.Random
	logger *slog.Logger

	state   model.GameState
	board   *model.Board
	players [2]player.Player
	current int
	moves   int
}

// NewController creates a new game Controller
func NewController(
	input console.Input,
	output console.Output,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		input:  input,
		output: output,
		random: random,
		logger: logger.With(slog.String("component", "game-controller")),
		state:  model.GameStateSelectingMode,
	}
}

// State returns the current phase of the game
func (c *Controller) State() model.GameState {
	return c.state
}

// Board returns the board of the game in progress, or nil before play starts
func (c *Controller) Board() *model.Board {
	return c.board
}

// Run plays one complete game: title, mode selection, then turns until a
// win or a draw
func (c *Controller) Run() (*model.Result, error) {
	c.output.WriteLine(TitleLine)
	c.output.WriteLine("")

	first, second, err := c.SelectMode()
	if err != nil {
		return nil, err
	}
	return c.Play(first, second)
}

// Play runs the turn loop between two players; first moves first
func (c *Controller) Play(first, second player.Player) (*model.Result, error) {
	if c.state.IsTerminal() {
		return nil, fmt.Errorf("game already finished: %s", c.state)
	}

	c.board = model.NewBoard()
	c.players = [2]player.Player{first, second}
	c.current = 0
	c.moves = 0
	c.state = model.GameStatePlaying

	c.logger.Info("game started",
		slog.String("player_one", first.Name()),
		slog.String("player_two", second.Name()),
	)

	for {
		mover := c.players[c.current]

		col, err := mover.ChooseColumn(c.board)
		if err != nil {
			c.logger.Error("player could not move",
				slog.String("player", mover.Name()),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("%s choosing column: %w", mover.Name(), err)
		}

		row, err := c.board.Place(col, mover.Token())
		if err != nil {
			// Players only return placeable columns
			return nil, fmt.Errorf("%s placing in column %d: %w", mover.Name(), col, err)
		}
		c.moves++

		c.logger.Debug("token placed",
			slog.String("player", mover.Name()),
			slog.String("token", mover.Token().String()),
			slog.Int("column", col),
			slog.Int("row", row),
			slog.Int("move", c.moves),
		)

		c.displayBoard()

		if c.board.CheckWin(mover.Token()) {
			return c.finish(model.GameStateWon, mover), nil
		}
		if c.board.IsBoardFull() {
			return c.finish(model.GameStateDraw, nil), nil
		}

		c.current = 1 - c.current
	}
}

// finish moves to a terminal state and announces the outcome
func (c *Controller) finish(state model.GameState, winner player.Player) *model.Result {
	c.state = state
	result := &model.Result{
		State: state,
		Moves: c.moves,
	}

	if winner != nil {
		result.Winner = winner.Name()
		result.Token = winner.Token()
		c.output.WriteLine(fmt.Sprintf("%s wins!", winner.Name()))
	} else {
		c.output.WriteLine(DrawLine)
	}

	c.logger.Info("game completed",
		slog.String("state", string(state)),
		slog.String("winner", result.Winner),
		slog.Int("moves", c.moves),
	)

	return result
}

// displayBoard writes the board title, one line per row, then a blank line
func (c *Controller) displayBoard() {
	c.output.WriteLine(BoardTitleLine)
	for _, line := range c.board.RenderLines() {
		c.output.WriteLine(line)
	}
	c.output.WriteLine("")
}
