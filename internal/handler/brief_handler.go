package handler

import (
	"errors"
	"net/http"

	"github.com/boshify/content-brief-generator/internal/repository"
	"github.com/boshify/content-brief-generator/internal/service"
	"github.com/boshify/content-brief-generator/internal/webhook"
	"github.com/boshify/content-brief-generator/pkg/response"

	"github.com/gorilla/mux"
)

type BriefHandler struct {
	service *service.BriefService
}

func NewBriefHandler(service *service.BriefService) *BriefHandler {
	return &BriefHandler{service: service}
}

// Generate blocks for the duration of the webhook round-trip. The session's
// busy flag keeps concurrent mutations out meanwhile.
func (h *BriefHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	session, err := h.service.Generate(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, webhook.ErrNotConfigured):
			response.ServiceUnavailable(w, err.Error())
		case errors.Is(err, service.ErrSessionBusy):
			response.Conflict(w, err.Error())
		case errors.Is(err, repository.ErrSessionNotFound):
			response.NotFound(w, "Session not found")
		default:
			// Transport failures, timeouts, non-2xx replies, and
			// unusable response shapes all come from the webhook side.
			response.BadGateway(w, err.Error())
		}
		return
	}

	response.Success(w, session)
}
