package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/boshify/content-brief-generator/internal/domain"
	"github.com/boshify/content-brief-generator/internal/service"
	"github.com/boshify/content-brief-generator/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type OutlineHandler struct {
	service  *service.OutlineService
	validate *validator.Validate
}

func NewOutlineHandler(service *service.OutlineService) *OutlineHandler {
	return &OutlineHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *OutlineHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req domain.UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	session, err := h.service.UpdateTitle(sessionID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, session)
}

func (h *OutlineHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req domain.UpdateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	session, err := h.service.UpdateFeedback(sessionID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, session)
}

func (h *OutlineHandler) AddSection(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req domain.AddSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	session, err := h.service.AddSection(sessionID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, session)
}

func (h *OutlineHandler) InsertSection(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req domain.InsertSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	session, err := h.service.InsertSection(sessionID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, session)
}

func (h *OutlineHandler) RemoveSection(w http.ResponseWriter, r *http.Request) {
	sessionID, group, index, ok := sectionVars(w, r)
	if !ok {
		return
	}

	session, err := h.service.RemoveSection(sessionID, group, index)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, session)
}

func (h *OutlineHandler) MoveSection(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req domain.MoveSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	session, err := h.service.MoveSection(sessionID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, session)
}

func (h *OutlineHandler) RelocateSection(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req domain.RelocateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	session, err := h.service.RelocateSection(sessionID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, session)
}

func (h *OutlineHandler) ChangeHeadingLevel(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req domain.ChangeLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	session, err := h.service.ChangeHeadingLevel(sessionID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, session)
}

func (h *OutlineHandler) ReorderGroup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]
	group := domain.GroupName(vars["group"])
	if !group.Valid() {
		response.BadRequest(w, "Unknown group")
		return
	}

	var req domain.ReorderGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	session, err := h.service.ReorderGroup(sessionID, group, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, session)
}

func (h *OutlineHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	sessionID, group, index, ok := sectionVars(w, r)
	if !ok {
		return
	}

	var req domain.UpdateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	session, err := h.service.UpdateSection(sessionID, group, index, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, session)
}

func sectionVars(w http.ResponseWriter, r *http.Request) (string, domain.GroupName, int, bool) {
	vars := mux.Vars(r)
	sessionID := vars["id"]

	group := domain.GroupName(vars["group"])
	if !group.Valid() {
		response.BadRequest(w, "Unknown group")
		return "", "", 0, false
	}

	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		response.BadRequest(w, "Invalid section index")
		return "", "", 0, false
	}

	return sessionID, group, index, true
}
