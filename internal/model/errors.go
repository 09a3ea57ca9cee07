package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrColumnOutOfRange = errors.New("column is out of range")
	ErrColumnFull       = errors.New("column is full")

	// Input errors
	ErrInvalidInput   = errors.New("input is not a number")
	ErrInvalidMode    = errors.New("invalid game mode")
	ErrInputExhausted = errors.New("no more input available")

	// Player errors
	ErrNoOpenColumn = errors.New("no open column on the board")
)
