package movement

import (
	"log/slog"

	"github.com/mcoot/tetris-go/internal/model"
)

// Rotation selects the direction of a rotation attempt
type Rotation int

const (
	RotationCW Rotation = iota
	RotationCCW
)

func (r Rotation) String() string {
	switch r {
	case RotationCW:
		return "cw"
	case RotationCCW:
		return "ccw"
	default:
		return "unknown"
	}
}

var down = model.Point{Row: 1, Col: 0}

// Service answers whether a piece may move on a playfield. It holds no game
// state; the playfield is never mutated.
type Service struct {
	logger *slog.Logger
}

// New creates a new movement Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Translate moves the piece by delta if the destination is legal. On collision
// the piece is returned unchanged along with every violated constraint.
func (s *Service) Translate(pf *model.Playfield, piece model.Piece, delta model.Point) (model.Piece, model.CollisionResult) {
	moved := piece.Translated(delta)
	result := pf.TestCollision(moved.Cells[:]...)
	if !result.IsNone() {
		return piece, result
	}
	return moved, model.CollisionNone
}

// Rotate turns the piece one step in the given direction about its pivot.
// No kick offsets are tried; a blocked rotation returns the piece unchanged.
func (s *Service) Rotate(pf *model.Playfield, piece model.Piece, dir Rotation) (model.Piece, model.CollisionResult) {
	var rotated model.Piece
	switch dir {
	case RotationCW:
		rotated = piece.RotatedCW()
	case RotationCCW:
		rotated = piece.RotatedCCW()
	default:
		return piece, model.CollisionNone
	}

	result := pf.TestCollision(rotated.Cells[:]...)

	s.logger.Debug("rotation attempt",
		slog.String("type", piece.Type.String()),
		slog.String("from", piece.Facing.String()),
		slog.String("to", rotated.Facing.String()),
		slog.String("collision", result.String()),
	)

	if !result.IsNone() {
		return piece, result
	}
	return rotated, model.CollisionNone
}

// IsLanded returns true if the piece cannot move one row down
func (s *Service) IsLanded(pf *model.Playfield, piece model.Piece) bool {
	return !pf.TestCollision(piece.Translated(down).CellSlice()...).IsNone()
}

// Landing returns the lowest legal position straight below the piece
func (s *Service) Landing(pf *model.Playfield, piece model.Piece) model.Piece {
	landing, _ := s.HardDrop(pf, piece)
	return landing
}

// HardDrop returns the landing position and the number of rows travelled
func (s *Service) HardDrop(pf *model.Playfield, piece model.Piece) (model.Piece, int) {
	rows := 0
	for !s.IsLanded(pf, piece) {
		piece = piece.Translated(down)
		rows++
	}
	return piece, rows
}

// IsBlockedOut returns true if the piece collides where it stands, as a newly
// spawned piece does when the stack has reached the spawn rows
func (s *Service) IsBlockedOut(pf *model.Playfield, piece model.Piece) bool {
	return !pf.TestCollision(piece.Cells[:]...).IsNone()
}
