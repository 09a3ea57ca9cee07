package model

// GameState represents the current phase of a game
type GameState string

const (
	GameStateSelectingMode GameState = "selecting_mode" // Choosing opponents
	GameStatePlaying       GameState = "playing"        // Turns in progress
	GameStateWon           GameState = "won"            // A player connected four
	GameStateDraw          GameState = "draw"           // Board filled with no winner
)

// IsTerminal returns true if the game has ended
func (s GameState) IsTerminal() bool {
	return s == GameStateWon || s == GameStateDraw
}

// GameMode selects who plays in a game
type GameMode int

const (
	GameModeVsComputer GameMode = 1
	GameModeTwoHumans  GameMode = 2
)

// Default display names
const (
	DefaultPlayerOneName = "Player 1"
	DefaultPlayerTwoName = "Player 2"
	ComputerName         = "Computer"
)

// Result is the outcome of a finished game
type Result struct {
	State  GameState
	Winner string // Empty on a draw
	Token  Cell   // Winner's token, Empty on a draw
	Moves  int    // Total tokens placed
}
