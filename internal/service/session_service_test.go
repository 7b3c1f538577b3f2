package service

import (
	"errors"
	"testing"

	"github.com/boshify/content-brief-generator/internal/domain"
	"github.com/boshify/content-brief-generator/internal/repository"
)

func newSessionService() *SessionService {
	return NewSessionService(repository.NewSessionRepository(), nil)
}

func TestSessionService_CreateWithSuppliedID(t *testing.T) {
	service := newSessionService()

	session, err := service.Create(&domain.CreateSessionRequest{SessionID: "ext-123", Title: "Widgets"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if session.ID != "ext-123" {
		t.Errorf("expected supplied id to be kept, got %s", session.ID)
	}
	if session.Outline.Title.Text != "Widgets" {
		t.Errorf("expected seeded title, got %q", session.Outline.Title.Text)
	}

	if _, err := service.Create(&domain.CreateSessionRequest{SessionID: "ext-123"}); err == nil {
		t.Error("expected duplicate id to be rejected")
	}
}

func TestSessionService_CreateGeneratesID(t *testing.T) {
	service := newSessionService()

	session, err := service.Create(&domain.CreateSessionRequest{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.ID == "" {
		t.Error("expected a generated session id")
	}
}

func TestSessionService_GetUnknown(t *testing.T) {
	service := newSessionService()

	if _, err := service.Get("missing"); !errors.Is(err, repository.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_MutateRejectedWhileBusy(t *testing.T) {
	service := newSessionService()
	session, _ := service.Create(&domain.CreateSessionRequest{SessionID: "s1"})

	if _, _, err := service.BeginGenerate(session.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err := service.Mutate(session.ID, func(s *domain.Session) error {
		s.Outline.AddSection(domain.GroupMainContent)
		return nil
	})
	if !errors.Is(err, ErrSessionBusy) {
		t.Errorf("expected ErrSessionBusy, got %v", err)
	}

	if _, _, err := service.BeginGenerate(session.ID); !errors.Is(err, ErrSessionBusy) {
		t.Errorf("expected second generate to be rejected, got %v", err)
	}

	service.EndGenerate(session.ID)

	if _, err := service.Mutate(session.ID, func(s *domain.Session) error { return nil }); err != nil {
		t.Errorf("expected mutation after EndGenerate, got %v", err)
	}
}

func TestSessionService_BeginGenerateSnapshotsState(t *testing.T) {
	service := newSessionService()
	session, _ := service.Create(&domain.CreateSessionRequest{SessionID: "s1"})

	_, err := service.Mutate(session.ID, func(s *domain.Session) error {
		s.Feedback = "tighter intros"
		sec := s.Outline.AddSection(domain.GroupMainContent)
		sec.HeadingName = "Intro"
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	snap, feedback, err := service.BeginGenerate(session.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if feedback != "tighter intros" {
		t.Errorf("expected feedback to be captured, got %q", feedback)
	}
	if snap.Groups[domain.GroupMainContent][0].HeadingName != "Intro" {
		t.Error("expected the snapshot to carry the latest edits")
	}
}

func TestSessionService_Delete(t *testing.T) {
	service := newSessionService()
	session, _ := service.Create(&domain.CreateSessionRequest{SessionID: "s1"})

	if err := service.Delete(session.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := service.Get(session.ID); !errors.Is(err, repository.ErrSessionNotFound) {
		t.Error("expected the session to be gone")
	}
	if err := service.Delete(session.ID); !errors.Is(err, repository.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
