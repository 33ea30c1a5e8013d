package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "cart:session:"
	sessionTTL       = 30 * 24 * time.Hour
)

// SessionStore keeps serialized cart sessions in Redis so carts survive
// process restarts and can be shared across instances.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) ([]byte, bool, error) {
	data, err := s.rdb.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *SessionStore) Set(ctx context.Context, sessionID string, data []byte) error {
	return s.rdb.Set(ctx, sessionKeyPrefix+sessionID, data, sessionTTL).Err()
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
