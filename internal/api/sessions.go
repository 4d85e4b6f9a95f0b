package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DrGenie/LonelyLess-AU/internal/hermes"
	"github.com/DrGenie/LonelyLess-AU/internal/report"
	"github.com/DrGenie/LonelyLess-AU/internal/store"
)

type SessionsHandler struct {
	sessions  *store.Sessions
	archive   store.Archive
	scenarios *ScenariosHandler
	events    *hermes.Publisher
	metrics   *Metrics
	logger    *slog.Logger
}

func NewSessionsHandler(s *store.Sessions, a store.Archive, sc *ScenariosHandler, p *hermes.Publisher, m *Metrics, logger *slog.Logger) *SessionsHandler {
	return &SessionsHandler{sessions: s, archive: a, scenarios: sc, events: p, metrics: m, logger: logger}
}

type ComparisonResponse struct {
	Title string       `json:"title"`
	Rows  []report.Row `json:"rows"`
}

// Create starts a session with an empty scenario repository.
// POST /api/v1/sessions
func (h *SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Start()
	if h.metrics != nil {
		h.metrics.Sessions.Inc()
	}
	h.events.Publish(hermes.SubjectSessionStarted(sess.ID.String()), hermes.SessionStartedEvent{
		SessionID: sess.ID.String(),
		StartedAt: sess.StartedAt,
	})
	writeJSON(w, http.StatusCreated, sess)
}

// End drops the session and its repository.
// DELETE /api/v1/sessions/{id}
func (h *SessionsHandler) End(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	saved := sess.Repository.Count()
	if err := h.sessions.End(sess.ID); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if h.metrics != nil {
		h.metrics.Sessions.Dec()
	}

	h.events.Publish(hermes.SubjectSessionEnded(sess.ID.String()), hermes.SessionEndedEvent{
		SessionID:      sess.ID.String(),
		SavedScenarios: saved,
		EndedAt:        time.Now().UTC(),
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":      sess.ID,
		"saved_scenarios": saved,
	})
}

// SaveScenario validates, evaluates and appends a scenario to the session.
// POST /api/v1/sessions/{id}/scenarios
func (h *SessionsHandler) SaveScenario(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req EvaluateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, ok := h.scenarios.assess(w, req)
	if !ok {
		return
	}

	entry := sess.Repository.Append(a.Scenario, a.Result)
	if h.metrics != nil {
		h.metrics.SavedScenarios.Inc()
	}

	if h.archive != nil {
		if err := h.archive.SaveScenario(r.Context(), &entry); err != nil {
			h.logger.Error("failed to archive saved scenario", "scenario_id", entry.ID, "session_id", sess.ID, "error", err)
		}
	}

	h.events.Publish(hermes.SubjectScenarioSaved(entry.ID.String()), hermes.ScenarioSavedEvent{
		ScenarioID:        entry.ID.String(),
		SessionID:         sess.ID.String(),
		Name:              entry.Name,
		UptakeProbability: entry.Result.UptakeProbability,
		NetBenefit:        entry.Result.NetBenefit,
		SavedAt:           entry.SavedAt,
	})

	writeJSON(w, http.StatusCreated, entry)
}

// ListScenarios returns the session's saved scenarios in insertion order.
// GET /api/v1/sessions/{id}/scenarios
func (h *SessionsHandler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Repository.All())
}

// Comparison renders the saved scenarios side by side. ?format=text returns
// the plain-text document instead of JSON rows.
// GET /api/v1/sessions/{id}/comparison
func (h *SessionsHandler) Comparison(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	entries := sess.Repository.All()
	if err := report.RequireComparable(len(entries)); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	rows := report.Build(entries)
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, report.Render(report.Title, rows))
		return
	}
	writeJSON(w, http.StatusOK, ComparisonResponse{Title: report.Title, Rows: rows})
}

func (h *SessionsHandler) session(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return nil, false
	}
	sess, err := h.sessions.Get(id)
	if errors.Is(err, store.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return sess, true
}
