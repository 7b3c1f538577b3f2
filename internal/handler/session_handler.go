package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boshify/content-brief-generator/internal/domain"
	"github.com/boshify/content-brief-generator/internal/repository"
	"github.com/boshify/content-brief-generator/internal/service"
	"github.com/boshify/content-brief-generator/pkg/response"

	"github.com/gorilla/mux"
)

type SessionHandler struct {
	service *service.SessionService
}

func NewSessionHandler(service *service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request payload")
			return
		}
	}

	session, err := h.service.Create(&req)
	if err != nil {
		response.Conflict(w, err.Error())
		return
	}

	response.Created(w, session)
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	session, err := h.service.Get(sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, session)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := h.service.Delete(sessionID); err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Session deleted"})
}

// writeServiceError maps service and repository errors onto status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		response.NotFound(w, "Session not found")
	case errors.Is(err, service.ErrSessionBusy):
		response.Conflict(w, err.Error())
	case errors.Is(err, service.ErrSectionNotFound):
		response.NotFound(w, err.Error())
	default:
		response.InternalError(w, err.Error())
	}
}
