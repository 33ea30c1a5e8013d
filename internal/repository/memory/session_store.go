package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionStore is an in-process cart store used when Redis is not
// configured, and by tests.
type SessionStore struct {
	cache *cache.Cache
}

func NewSessionStore() *SessionStore {
	// Carts live for 30 days, expired entries are purged hourly.
	c := cache.New(30*24*time.Hour, 1*time.Hour)
	return &SessionStore{
		cache: c,
	}
}

func (s *SessionStore) Get(_ context.Context, sessionID string) ([]byte, bool, error) {
	if x, found := s.cache.Get(sessionID); found {
		return x.([]byte), true, nil
	}
	return nil, false, nil
}

func (s *SessionStore) Set(_ context.Context, sessionID string, data []byte) error {
	s.cache.Set(sessionID, data, cache.DefaultExpiration)
	return nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.cache.Delete(sessionID)
	return nil
}
