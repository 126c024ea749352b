package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tetris-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newSession(id model.SessionID) *model.Session {
	return model.NewSession(id, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("session-1")
	session.Playfield.SetAt(39, 0, model.TetriminoT)
	session.Playfield.SetAt(38, 9, model.TetriminoZ)
	piece, _ := model.SpawnPiece(model.TetriminoL)
	session.Active = &piece
	session.LockedPieces = 3

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.Playfield, retrieved.Playfield)
	s.Require().NotNil(retrieved.Active)
	s.Equal(piece, *retrieved.Active)
	s.Equal(3, retrieved.LockedPieces)
	s.True(session.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionStoredAsRowStrings() {
	session := s.newSession("session-1")
	session.Playfield.SetAt(39, 4, model.TetriminoO)
	_ = s.storage.SaveSession(s.ctx, session)

	raw, err := s.mini.Get(sessionKey("tetris", "session-1"))
	s.Require().NoError(err)
	s.Contains(raw, `"....O....."`)
}

func (s *StorageSuite) TestSessionTTL() {
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-1"))

	ttl := s.mini.TTL(sessionKey("tetris", "session-1"))
	s.True(ttl > 0, "Session should have TTL")

	s.mini.FastForward(2 * time.Hour)
	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-1"))

	err := s.storage.DeleteSession(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)

	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *StorageSuite) TestListSessionsSkipsExpired() {
	_ = s.storage.SaveSession(s.ctx, s.newSession("b"))
	_ = s.storage.SaveSession(s.ctx, s.newSession("a"))

	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.SessionID{"a", "b"}, ids)

	s.mini.Del(sessionKey("tetris", "a"))

	ids, err = s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.SessionID{"b"}, ids)
}

func (s *StorageSuite) TestKeyPrefixIsolatesStorages() {
	client := redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	cfg := DefaultConfig()
	cfg.KeyPrefix = "other"
	other := NewWithClient(client, cfg)
	defer other.Close()

	_ = s.storage.SaveSession(s.ctx, s.newSession("session-1"))

	_, err := other.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}
