package model

import "strings"

// Board dimensions and run length
const (
	Rows      = 6
	Cols      = 7
	WinLength = 4
)

// Cell is the state of a single grid cell
type Cell uint8

const (
	Empty Cell = iota
	TokenA
	TokenB
)

// Glyph returns the display character for the cell
func (c Cell) Glyph() string {
	switch c {
	case TokenA:
		return "X"
	case TokenB:
		return "O"
	default:
		return "."
	}
}

func (c Cell) String() string {
	switch c {
	case TokenA:
		return "token_a"
	case TokenB:
		return "token_b"
	default:
		return "empty"
	}
}

// Board is the 6x7 Connect Four grid
type Board struct {
	Cells [Rows][Cols]Cell // Row-major: Cells[row][col], row 0 is the top
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Cell returns the cell at the given position, or Empty if out of bounds
func (b *Board) Cell(row, col int) Cell {
	if row < 0 || row >= Rows || !IsValidColumn(col) {
		return Empty
	}
	return b.Cells[row][col]
}

// IsValidColumn returns true if col is within [0, Cols)
func IsValidColumn(col int) bool {
	return col >= 0 && col < Cols
}

// Place drops a token into the column and returns the row it landed in.
// The board is left unchanged on error.
func (b *Board) Place(col int, token Cell) (int, error) {
	if !IsValidColumn(col) {
		return -1, ErrColumnOutOfRange
	}
	if b.IsColumnFull(col) {
		return -1, ErrColumnFull
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.Cells[row][col] == Empty {
			b.Cells[row][col] = token
			return row, nil
		}
	}
	return -1, ErrColumnFull
}

// IsColumnFull returns true if the top cell of the column is occupied.
// Out-of-range columns are reported full.
func (b *Board) IsColumnFull(col int) bool {
	if !IsValidColumn(col) {
		return true
	}
	return b.Cells[0][col] != Empty
}

// IsBoardFull returns true if every column is full
func (b *Board) IsBoardFull() bool {
	for col := 0; col < Cols; col++ {
		if !b.IsColumnFull(col) {
			return false
		}
	}
	return true
}

// CheckWin returns true if token occupies four consecutive cells in a row,
// a column, or either diagonal
func (b *Board) CheckWin(token Cell) bool {
	if token == Empty {
		return false
	}

	// Horizontal
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Cols-WinLength; col++ {
			if b.runFrom(row, col, 0, 1, token) {
				return true
			}
		}
	}

	// Vertical
	for row := 0; row <= Rows-WinLength; row++ {
		for col := 0; col < Cols; col++ {
			if b.runFrom(row, col, 1, 0, token) {
				return true
			}
		}
	}

	// Diagonal down-right
	for row := 0; row <= Rows-WinLength; row++ {
		for col := 0; col <= Cols-WinLength; col++ {
			if b.runFrom(row, col, 1, 1, token) {
				return true
			}
		}
	}

	// Diagonal up-right
	for row := WinLength - 1; row < Rows; row++ {
		for col := 0; col <= Cols-WinLength; col++ {
			if b.runFrom(row, col, -1, 1, token) {
				return true
			}
		}
	}

	return false
}

// runFrom reports whether WinLength cells starting at (row, col) and stepping
// by (dRow, dCol) all hold token. Callers keep the run on the grid.
func (b *Board) runFrom(row, col, dRow, dCol int, token Cell) bool {
	for i := 0; i < WinLength; i++ {
		if b.Cells[row+i*dRow][col+i*dCol] != token {
			return false
		}
	}
	return true
}

// Render returns the glyphs of every row, top row first
func (b *Board) Render() [][]string {
	rows := make([][]string, Rows)
	for row := 0; row < Rows; row++ {
		rows[row] = make([]string, Cols)
		for col := 0; col < Cols; col++ {
			rows[row][col] = b.Cells[row][col].Glyph()
		}
	}
	return rows
}

// RenderLines returns one display line per row with glyphs separated by a space
func (b *Board) RenderLines() []string {
	rendered := b.Render()
	lines := make([]string, len(rendered))
	for i, row := range rendered {
		lines[i] = strings.Join(row, " ")
	}
	return lines
}
