package model

import "errors"

// Common errors used across the application
var (
	// Parsing errors
	ErrInvalidTetriminoType = errors.New("invalid tetrimino type")
	ErrInvalidFacing        = errors.New("invalid tetrimino facing")
	ErrInvalidCommand       = errors.New("invalid command")
	ErrInvalidPoint         = errors.New("invalid point")
	ErrInvalidPlayfield     = errors.New("invalid playfield encoding")

	// Session errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrNoActivePiece    = errors.New("no active piece")
	ErrPieceActive      = errors.New("a piece is already active")
	ErrGameOver         = errors.New("game is over")
	ErrPlacementBlocked = errors.New("placement collides with the playfield")
)
