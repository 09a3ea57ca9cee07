package player

import (
	"github.com/mcoot/connectfour/internal/dependencies/random"
	"github.com/mcoot/connectfour/internal/model"
)

// Computer picks a uniformly random open column
type Computer struct {
	name   string
	token  model.Cell
	random random.Random
}

// NewComputer creates a Computer player drawing from rnd
func NewComputer(name string, token model.Cell, rnd random.Random) *Computer {
	return &Computer{
		name:   name,
		token:  token,
		random: rnd,
	}
}

// Name returns the player's display name
func (c *Computer) Name() string {
	return c.name
}

// Token returns the player's token
func (c *Computer) Token() model.Cell {
	return c.token
}

// ChooseColumn draws columns from the whole range until an open one comes up
func (c *Computer) ChooseColumn(board BoardView) (int, error) {
	if len(openColumns(board)) == 0 {
		return -1, model.ErrNoOpenColumn
	}
	for {
		col := c.random.Intn(model.Cols)
		if !board.IsColumnFull(col) {
			return col, nil
		}
	}
}

var _ Player = (*Computer)(nil)
