package handler

import (
	"fmt"
	"net/http"

	"github.com/boshify/content-brief-generator/internal/service"

	"github.com/gorilla/mux"
)

type ExportHandler struct {
	service *service.ExportService
}

func NewExportHandler(service *service.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export streams the outline as a TSV download.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	tsv, err := h.service.ExportTSV(sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "content-brief-"+sessionID+".tsv"))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(tsv))
}
