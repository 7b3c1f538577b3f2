package service

import (
	"sync"
	"time"

	"github.com/boshify/content-brief-generator/internal/domain"
	"github.com/boshify/content-brief-generator/internal/repository"
	"github.com/boshify/content-brief-generator/internal/websocket"

	"github.com/google/uuid"
)

// SessionService owns session lifecycle and the per-session lock and busy
// discipline. Every outline mutation funnels through Mutate so the busy gate
// is enforced in one place.
type SessionService struct {
	repo      repository.SessionRepository
	wsManager *websocket.Manager

	locksMutex sync.Mutex
	locks      map[string]*sync.Mutex
}

func NewSessionService(repo repository.SessionRepository, wsManager *websocket.Manager) *SessionService {
	return &SessionService{
		repo:      repo,
		wsManager: wsManager,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (s *SessionService) Create(req *domain.CreateSessionRequest) (*domain.SessionResponse, error) {
	id := req.SessionID
	if id == "" {
		id = uuid.New().String()
	}

	now := time.Now()
	session := &domain.Session{
		ID:        id,
		Outline:   domain.NewOutline(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Title != "" {
		text := req.Title
		session.Outline.UpdateTitle(&domain.UpdateTitleRequest{Text: &text})
	}

	if err := s.repo.Create(session); err != nil {
		return nil, err
	}

	resp := sessionResponse(session)
	return &resp, nil
}

func (s *SessionService) Get(id string) (*domain.SessionResponse, error) {
	var resp domain.SessionResponse
	err := s.withSession(id, func(session *domain.Session) error {
		resp = sessionResponse(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *SessionService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.locksMutex.Lock()
	delete(s.locks, id)
	s.locksMutex.Unlock()
	return nil
}

// Mutate runs fn against the session's outline under the session lock. A
// busy session rejects the mutation before fn runs. On success the fresh
// snapshot is broadcast to the session's websocket subscribers.
func (s *SessionService) Mutate(id string, fn func(*domain.Session) error) (*domain.SessionResponse, error) {
	var resp domain.SessionResponse
	err := s.withSession(id, func(session *domain.Session) error {
		if session.Busy {
			return ErrSessionBusy
		}
		if err := fn(session); err != nil {
			return err
		}
		session.UpdatedAt = time.Now()
		resp = sessionResponse(session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcast(id, websocket.TypeSnapshot, &resp)
	return &resp, nil
}

// BeginGenerate flips the busy flag and hands back the data the webhook call
// needs, captured under the lock so the payload cannot see a half-applied
// edit.
func (s *SessionService) BeginGenerate(id string) (domain.Snapshot, string, error) {
	var snap domain.Snapshot
	var feedback string
	err := s.withSession(id, func(session *domain.Session) error {
		if session.Busy {
			return ErrSessionBusy
		}
		session.Busy = true
		snap = session.Outline.Snapshot()
		feedback = session.Feedback
		return nil
	})
	if err != nil {
		return domain.Snapshot{}, "", err
	}

	s.broadcast(id, websocket.TypeGenerateStarted, map[string]string{"session_id": id})
	return snap, feedback, nil
}

// ApplyGenerated runs fn while the session is still marked busy, so it
// cannot interleave with a user mutation that slipped past the gate. On
// success the busy flag drops with the result, so the response already shows
// the session as idle.
func (s *SessionService) ApplyGenerated(id string, fn func(*domain.Session) error) (*domain.SessionResponse, error) {
	var resp domain.SessionResponse
	err := s.withSession(id, func(session *domain.Session) error {
		if err := fn(session); err != nil {
			return err
		}
		session.Busy = false
		session.UpdatedAt = time.Now()
		resp = sessionResponse(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// EndGenerate clears the busy flag unconditionally. It is the deferred
// cleanup path for every generate outcome, success or failure.
func (s *SessionService) EndGenerate(id string) {
	var resp domain.SessionResponse
	err := s.withSession(id, func(session *domain.Session) error {
		session.Busy = false
		resp = sessionResponse(session)
		return nil
	})
	if err != nil {
		return
	}

	s.broadcast(id, websocket.TypeGenerateFinished, &resp)
}

func (s *SessionService) BroadcastError(id string, message string) {
	s.broadcast(id, websocket.TypeGenerateError, &websocket.GenerateErrorPayload{
		SessionID: id,
		Error:     message,
	})
}

func (s *SessionService) withSession(id string, fn func(*domain.Session) error) error {
	session, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	return fn(session)
}

func (s *SessionService) lockFor(id string) *sync.Mutex {
	s.locksMutex.Lock()
	defer s.locksMutex.Unlock()

	if lock, ok := s.locks[id]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	s.locks[id] = lock
	return lock
}

func (s *SessionService) broadcast(id string, msgType websocket.MessageType, payload interface{}) {
	if s.wsManager == nil {
		return
	}
	msg, err := websocket.NewMessage(msgType, payload)
	if err != nil {
		return
	}
	s.wsManager.BroadcastToSession(id, msg)
}

func sessionResponse(session *domain.Session) domain.SessionResponse {
	return domain.SessionResponse{
		ID:          session.ID,
		Busy:        session.Busy,
		Feedback:    session.Feedback,
		RawResponse: session.RawResponse,
		Outline:     session.Outline.Snapshot(),
		CreatedAt:   session.CreatedAt,
		UpdatedAt:   session.UpdatedAt,
	}
}
