package redis

import (
	"fmt"

	"github.com/mcoot/tetris-go/internal/model"
)

// sessionKey returns the Redis key for a Session
func sessionKey(prefix string, id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", prefix, id)
}

// sessionIndexKey returns the Redis key for the SET of known session IDs
func sessionIndexKey(prefix string) string {
	return fmt.Sprintf("%s:idx:sessions", prefix)
}
