package player

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mcoot/connectfour/internal/dependencies/console"
	"github.com/mcoot/connectfour/internal/model"
)

// Human picks columns from lines typed at the console
type Human struct {
	name   string
	token  model.Cell
	input  console.Input
	output console.Output
}

// NewHuman creates a Human player
func NewHuman(name string, token model.Cell, input console.Input, output console.Output) *Human {
	return &Human{
		name:   name,
		token:  token,
		input:  input,
		output: output,
	}
}

// Name returns the player's display name
func (h *Human) Name() string {
	return h.name
}

// Token returns the player's token
func (h *Human) Token() model.Cell {
	return h.token
}

// ChooseColumn prompts until a valid, non-full column is entered.
// Unparseable lines are ignored; out-of-range and full columns get a message.
func (h *Human) ChooseColumn(board BoardView) (int, error) {
	for {
		h.output.WriteLine(fmt.Sprintf("%s, choose a column (0-%d):", h.name, model.Cols-1))

		line, err := h.input.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return -1, model.ErrInputExhausted
			}
			return -1, fmt.Errorf("read column: %w", err)
		}

		col, err := ValidateColumn(line, board)
		switch {
		case err == nil:
			return col, nil
		case errors.Is(err, model.ErrColumnOutOfRange):
			h.output.WriteLine(fmt.Sprintf("Column must be between 0 and %d.", model.Cols-1))
		case errors.Is(err, model.ErrColumnFull):
			h.output.WriteLine(fmt.Sprintf("Column %d is full. Choose another column.", col))
		}
	}
}

// ValidateColumn parses a typed column and checks it can take a token.
// The parsed column is returned alongside ErrColumnFull.
func ValidateColumn(line string, board BoardView) (int, error) {
	col, err := strconv.Atoi(line)
	if err != nil {
		return -1, model.ErrInvalidInput
	}
	if !model.IsValidColumn(col) {
		return col, model.ErrColumnOutOfRange
	}
	if board.IsColumnFull(col) {
		return col, model.ErrColumnFull
	}
	return col, nil
}

var _ Player = (*Human)(nil)
