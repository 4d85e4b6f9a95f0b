package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session owns one scenario repository from start to end.
type Session struct {
	ID         uuid.UUID   `json:"session_id"`
	StartedAt  time.Time   `json:"started_at"`
	Repository *Repository `json:"-"`
}

// Sessions tracks live sessions. Ending a session drops its repository.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[uuid.UUID]*Session)}
}

// Start creates a session with an empty repository.
func (s *Sessions) Start() *Session {
	id := uuid.New()
	sess := &Session{
		ID:         id,
		StartedAt:  time.Now().UTC(),
		Repository: NewRepository(id),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return sess
}

// Get returns a live session or ErrSessionNotFound.
func (s *Sessions) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// End discards the session and its repository.
func (s *Sessions) End(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Count returns the number of live sessions.
func (s *Sessions) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
