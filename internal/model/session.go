package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// Session is one round of play: a playfield and at most one active piece
type Session struct {
	ID           SessionID `json:"id"`
	Playfield    Playfield `json:"playfield"`
	Active       *Piece    `json:"active,omitempty"`
	LockedPieces int       `json:"locked_pieces"`
	GameOver     bool      `json:"game_over"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewSession creates a session with an empty playfield
func NewSession(id SessionID, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	c := *s
	if s.Active != nil {
		active := *s.Active
		c.Active = &active
	}
	return &c
}
