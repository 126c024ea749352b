package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/tetris-go/internal/dependencies/clock"
	"github.com/mcoot/tetris-go/internal/dependencies/random"
	"github.com/mcoot/tetris-go/internal/model"
	"github.com/mcoot/tetris-go/internal/services/movement"
	"github.com/mcoot/tetris-go/internal/storage"
)

const (
	sessionIDLength   = 12
	sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	left  = model.Point{Row: 0, Col: -1}
	right = model.Point{Row: 0, Col: 1}
	down  = model.Point{Row: 1, Col: 0}
)

// MoveResult describes the outcome of a single command
type MoveResult struct {
	Session     *model.Session
	Moved       bool
	Collision   model.CollisionResult
	Locked      bool
	RowsDropped int
}

// Controller owns sessions and serializes every mutation of their playfields.
// Each mutating call loads the session, applies the change and saves it while
// holding the controller lock.
type Controller struct {
	mu       sync.Mutex
	storage  storage.Storage
	movement *movement.Service
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	movementService *movement.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		movement: movementService,
		clock:    clock,
		random:   random,
		logger:   logger,
	}
}

// CreateSession starts a new session with an empty playfield
func (c *Controller) CreateSession(ctx context.Context) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := model.SessionID(c.random.String(sessionIDLength, sessionIDAlphabet))
	session := model.NewSession(id, c.clock.Now())

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created", slog.String("session_id", string(id)))
	return session, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// ListSessions returns the IDs of all stored sessions
func (c *Controller) ListSessions(ctx context.Context) ([]model.SessionID, error) {
	return c.storage.ListSessions(ctx)
}

// DeleteSession removes a session
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.storage.GetSession(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	c.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// Spawn places a new active piece of type t at its spawn position. If the
// spawn cells are already occupied the session ends and ErrGameOver is returned.
func (c *Controller) Spawn(ctx context.Context, id model.SessionID, t model.TetriminoType) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.loadPlayable(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Active != nil {
		return nil, model.ErrPieceActive
	}

	piece, err := model.SpawnPiece(t)
	if err != nil {
		return nil, err
	}

	session.UpdatedAt = c.clock.Now()

	if c.movement.IsBlockedOut(&session.Playfield, piece) {
		session.GameOver = true
		if err := c.storage.SaveSession(ctx, session); err != nil {
			return nil, err
		}
		c.logger.Info("game over",
			slog.String("session_id", string(id)),
			slog.String("type", t.String()),
			slog.Int("locked_pieces", session.LockedPieces),
		)
		return nil, model.ErrGameOver
	}

	session.Active = &piece
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Move applies one command to the active piece. A blocked move is not an
// error: the piece stays put and the result carries the collision flags.
func (c *Controller) Move(ctx context.Context, id model.SessionID, cmd model.Command) (*MoveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.loadPlayable(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Active == nil {
		return nil, model.ErrNoActivePiece
	}

	pf := &session.Playfield
	before := *session.Active
	after := before
	result := &MoveResult{Session: session}

	switch cmd {
	case model.CommandNone:
	case model.CommandShiftLeft:
		after, result.Collision = c.movement.Translate(pf, before, left)
	case model.CommandShiftRight:
		after, result.Collision = c.movement.Translate(pf, before, right)
	case model.CommandSoftDrop:
		after, result.Collision = c.movement.Translate(pf, before, down)
	case model.CommandRotateCW:
		after, result.Collision = c.movement.Rotate(pf, before, movement.RotationCW)
	case model.CommandRotateCCW:
		after, result.Collision = c.movement.Rotate(pf, before, movement.RotationCCW)
	case model.CommandHardDrop:
		after, result.RowsDropped = c.movement.HardDrop(pf, before)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidCommand, cmd)
	}

	result.Moved = after != before
	session.Active = &after

	if cmd == model.CommandHardDrop {
		if err := c.lockActive(session); err != nil {
			return nil, err
		}
		result.Locked = true
	}

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Debug("command applied",
		slog.String("session_id", string(id)),
		slog.String("command", string(cmd)),
		slog.Bool("moved", result.Moved),
		slog.String("collision", result.Collision.String()),
	)

	return result, nil
}

// Lock writes the active piece into the playfield and clears it
func (c *Controller) Lock(ctx context.Context, id model.SessionID) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.loadPlayable(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Active == nil {
		return nil, model.ErrNoActivePiece
	}

	if err := c.lockActive(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Landing returns where the active piece would come to rest if hard dropped
func (c *Controller) Landing(ctx context.Context, id model.SessionID) (model.Piece, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return model.Piece{}, err
	}
	if session.Active == nil {
		return model.Piece{}, model.ErrNoActivePiece
	}
	return c.movement.Landing(&session.Playfield, *session.Active), nil
}

// Probe runs a collision test for the given cells against the session's playfield
func (c *Controller) Probe(ctx context.Context, id model.SessionID, cells []model.Point) (model.CollisionResult, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return model.CollisionNone, err
	}
	return session.Playfield.TestCollision(cells...), nil
}

// Reset empties the playfield and starts the session over
func (c *Controller) Reset(ctx context.Context, id model.SessionID) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Playfield.Reset()
	session.Active = nil
	session.LockedPieces = 0
	session.GameOver = false
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session reset", slog.String("session_id", string(id)))
	return session, nil
}

// loadPlayable fetches a session that has not ended
func (c *Controller) loadPlayable(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.GameOver {
		return nil, model.ErrGameOver
	}
	return session, nil
}

// lockActive validates the active piece's cells then locks them.
// Playfield.Lock itself never validates.
func (c *Controller) lockActive(session *model.Session) error {
	piece := session.Active
	if result := session.Playfield.TestCollision(piece.Cells[:]...); !result.IsNone() {
		return fmt.Errorf("%w: %s", model.ErrPlacementBlocked, result)
	}

	session.Playfield.Lock(piece.Cells[:], piece.Type)
	session.Active = nil
	session.LockedPieces++
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateSession(ctx context.Context) (*model.Session, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	ListSessions(ctx context.Context) ([]model.SessionID, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	Spawn(ctx context.Context, id model.SessionID, t model.TetriminoType) (*model.Session, error)
	Move(ctx context.Context, id model.SessionID, cmd model.Command) (*MoveResult, error)
	Lock(ctx context.Context, id model.SessionID) (*model.Session, error)
	Landing(ctx context.Context, id model.SessionID) (model.Piece, error)
	Probe(ctx context.Context, id model.SessionID, cells []model.Point) (model.CollisionResult, error)
	Reset(ctx context.Context, id model.SessionID) (*model.Session, error)
}

var _ ControllerInterface = (*Controller)(nil)
