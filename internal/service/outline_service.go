package service

import (
	"github.com/boshify/content-brief-generator/internal/domain"
)

// OutlineService exposes the outline mutations as busy-gated session
// operations. Each returns the session state after the edit.
type OutlineService struct {
	sessions *SessionService
}

func NewOutlineService(sessions *SessionService) *OutlineService {
	return &OutlineService{sessions: sessions}
}

func (s *OutlineService) UpdateTitle(sessionID string, req *domain.UpdateTitleRequest) (*domain.SessionResponse, error) {
	return s.sessions.Mutate(sessionID, func(session *domain.Session) error {
		session.Outline.UpdateTitle(req)
		return nil
	})
}

func (s *OutlineService) UpdateFeedback(sessionID string, req *domain.UpdateFeedbackRequest) (*domain.SessionResponse, error) {
	return s.sessions.Mutate(sessionID, func(session *domain.Session) error {
		session.Feedback = req.Feedback
		return nil
	})
}

func (s *OutlineService) AddSection(sessionID string, req *domain.AddSectionRequest) (*domain.SessionResponse, error) {
	return s.sessions.Mutate(sessionID, func(session *domain.Session) error {
		session.Outline.AddSection(req.Group)
		return nil
	})
}

func (s *OutlineService) InsertSection(sessionID string, req *domain.InsertSectionRequest) (*domain.SessionResponse, error) {
	return s.sessions.Mutate(sessionID, func(session *domain.Session) error {
		session.Outline.InsertSectionAfter(req.Group, req.Index)
		return nil
	})
}

func (s *OutlineService) RemoveSection(sessionID string, group domain.GroupName, index int) (*domain.SessionResponse, error) {
	return s.sessions.Mutate(sessionID, func(session *domain.Session) error {
		session.Outline.RemoveSection(group, index)
		return nil
	})
}

func (s *OutlineService) MoveSection(sessionID string, req *domain.MoveSectionRequest) (*domain.SessionResponse, error) {
	return s.sessions.Mutate(sessionID, func(session *domain.Session) error {
		session.Outline.MoveSection(req.Group, req.Index, req.Delta)
		return nil
	})
}

func (s *OutlineService) RelocateSection(sessionID string, req *domain.RelocateSectionRequest) (*domain.SessionResponse, error) {
	return s.sessions.Mutate(sessionID, func(session *domain.Session) error {
		session.Outline.RelocateSection(req.From, req.Index, req.To)
		return nil
	})
}

func (s *OutlineService) ChangeHeadingLevel(sessionID string, req *domain.ChangeLevelRequest) (*domain.SessionResponse, error) {
	return s.sessions.Mutate(sessionID, func(session *domain.Session) error {
		session.Outline.ChangeHeadingLevel(req.Group, req.Index, req.Direction)
		return nil
	})
}

func (s *OutlineService) ReorderGroup(sessionID string, group domain.GroupName, req *domain.ReorderGroupRequest) (*domain.SessionResponse, error) {
	return s.sessions.Mutate(sessionID, func(session *domain.Session) error {
		session.Outline.ReorderGroup(group, req.Order)
		return nil
	})
}

// UpdateSection applies direct field edits. Unlike reconciliation, user
// edits go through regardless of the section's lock flag.
func (s *OutlineService) UpdateSection(sessionID string, group domain.GroupName, index int, req *domain.UpdateSectionRequest) (*domain.SessionResponse, error) {
	return s.sessions.Mutate(sessionID, func(session *domain.Session) error {
		if session.Outline.UpdateSection(group, index, req) == nil {
			return ErrSectionNotFound
		}
		return nil
	})
}
