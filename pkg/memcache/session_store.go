package mem

import (
	"context"
	"sync"
	"time"
)

// SessionStore holds short-lived serialized planner sessions.
type SessionStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns the value for key if present and not expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	Delete(ctx context.Context, key string) error

	// PurgeExpired drops expired entries and reports how many were removed.
	PurgeExpired(ctx context.Context) (int, error)
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

type MemorySessions struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *MemorySessions) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(value))
	copy(buf, value)
	s.data[key] = entry{value: buf, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemorySessions) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return nil, false, nil
	}

	buf := make([]byte, len(e.value))
	copy(buf, e.value)
	return buf, true, nil
}

func (s *MemorySessions) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemorySessions) PurgeExpired(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			removed++
		}
	}
	return removed, nil
}

func (s *MemorySessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
