package player

import "github.com/mcoot/connectfour/internal/model"

// BoardView is the read-only board access a player needs to pick a move
type BoardView interface {
	IsColumnFull(col int) bool
}

// Player decides which column to drop a token into
type Player interface {
	// Name returns the player's display name
	Name() string
	// Token returns the token this player places
	Token() model.Cell
	// ChooseColumn returns a column in [0, model.Cols) that is not full.
	// An error means the player cannot move at all.
	ChooseColumn(board BoardView) (int, error)
}

// openColumns returns the columns that still accept a token
func openColumns(board BoardView) []int {
	var open []int
	for col := 0; col < model.Cols; col++ {
		if !board.IsColumnFull(col) {
			open = append(open, col)
		}
	}
	return open
}
