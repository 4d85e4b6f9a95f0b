package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DrGenie/LonelyLess-AU/internal/engine"
	"github.com/DrGenie/LonelyLess-AU/internal/store"
)

type AdminHandler struct {
	sessions *store.Sessions
	archive  store.Archive
	engine   *engine.Engine
}

func NewAdminHandler(s *store.Sessions, a store.Archive, e *engine.Engine) *AdminHandler {
	return &AdminHandler{sessions: s, archive: a, engine: e}
}

type Stats struct {
	LiveSessions       int    `json:"live_sessions"`
	CalibrationVersion string `json:"calibration_version"`
	ArchiveEnabled     bool   `json:"archive_enabled"`
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Stats{
		LiveSessions:       h.sessions.Count(),
		CalibrationVersion: h.engine.Calibration().Version,
		ArchiveEnabled:     h.archive != nil,
	})
}

// Archived lists the scenarios archived for a session, including ended ones.
// GET /api/v1/archive/{session_id}
func (h *AdminHandler) Archived(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		writeError(w, http.StatusServiceUnavailable, "archive not configured")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session_id")
		return
	}

	entries, err := h.archive.ListScenarios(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []*store.SavedScenario{}
	}
	writeJSON(w, http.StatusOK, entries)
}
