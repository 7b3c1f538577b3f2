package service

import (
	"log"

	"github.com/boshify/content-brief-generator/internal/domain"
	"github.com/boshify/content-brief-generator/internal/webhook"
)

// WebhookClient is the single blocking call to the external workflow.
type WebhookClient interface {
	Configured() bool
	Send(payload *webhook.Payload) ([]byte, error)
}

// BriefService orchestrates a generate round-trip: snapshot, webhook call,
// normalize, merge. Any failure leaves the outline exactly as it was when
// the call went out.
type BriefService struct {
	sessions *SessionService
	merge    *MergeService
	client   WebhookClient
}

func NewBriefService(sessions *SessionService, merge *MergeService, client WebhookClient) *BriefService {
	return &BriefService{
		sessions: sessions,
		merge:    merge,
		client:   client,
	}
}

func (s *BriefService) Generate(sessionID string) (*domain.SessionResponse, error) {
	// Configuration is checked before the busy flag is touched and before
	// any network I/O.
	if !s.client.Configured() {
		return nil, webhook.ErrNotConfigured
	}

	snap, feedback, err := s.sessions.BeginGenerate(sessionID)
	if err != nil {
		return nil, err
	}
	// The busy flag clears on every path out of this function.
	defer s.sessions.EndGenerate(sessionID)

	payload := webhook.BuildPayload(sessionID, snap, feedback)

	body, err := s.client.Send(payload)
	if err != nil {
		log.Printf("[Generate] webhook call failed for session %s: %v", sessionID, err)
		s.sessions.BroadcastError(sessionID, err.Error())
		return nil, err
	}

	decoded := webhook.Decode(body)
	switch decoded.Kind {
	case webhook.DecodedRawText:
		// Degraded success: keep the text for inspection, merge nothing.
		return s.sessions.ApplyGenerated(sessionID, func(session *domain.Session) error {
			session.RawResponse = decoded.Raw
			return nil
		})

	case webhook.DecodedMalformed:
		err := &MalformedResponseError{Raw: decoded.Raw}
		s.sessions.BroadcastError(sessionID, err.Error())
		return nil, err

	default:
		return s.sessions.ApplyGenerated(sessionID, func(session *domain.Session) error {
			s.merge.Merge(session.Outline, decoded.Outline)
			session.RawResponse = ""
			return nil
		})
	}
}
