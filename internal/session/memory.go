package session

import (
	"context"
	"sync"
)

// MemoryStore — каталог сессий в памяти процесса.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[int64]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[int64]Session)}
}

func (s *MemoryStore) Get(ctx context.Context, userID int64) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.m[userID]
	if !ok {
		return nil, nil
	}
	// Копия, чтобы вызывающий код не менял хранимое состояние мимо Set
	return &sess, nil
}

func (s *MemoryStore) Set(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[sess.UserID] = *sess
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, userID)
	return nil
}
