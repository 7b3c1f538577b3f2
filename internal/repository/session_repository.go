package repository

import (
	"errors"
	"sync"

	"github.com/boshify/content-brief-generator/internal/domain"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(session *domain.Session) error
	FindByID(id string) (*domain.Session, error)
	Delete(id string) error
	Count() int
}

// memorySessionRepo keeps sessions in process memory. Outline state is
// session-resident: there is no persistence layer behind it.
type memorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewSessionRepository() SessionRepository {
	return &memorySessionRepo{
		sessions: make(map[string]*domain.Session),
	}
}

func (r *memorySessionRepo) Create(session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return errors.New("session already exists")
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *memorySessionRepo) FindByID(id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *memorySessionRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *memorySessionRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
