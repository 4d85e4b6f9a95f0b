package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/DrGenie/LonelyLess-AU/internal/costbenefit"
	"github.com/DrGenie/LonelyLess-AU/internal/engine"
	"github.com/DrGenie/LonelyLess-AU/internal/hermes"
	"github.com/DrGenie/LonelyLess-AU/internal/scenario"
	"github.com/DrGenie/LonelyLess-AU/internal/scoring"
)

type ScenariosHandler struct {
	engine  *engine.Engine
	events  *hermes.Publisher
	metrics *Metrics
}

func NewScenariosHandler(e *engine.Engine, p *hermes.Publisher, m *Metrics) *ScenariosHandler {
	return &ScenariosHandler{engine: e, events: p, metrics: m}
}

// EvaluateRequest carries raw selections plus the QALY scenario to value them under.
type EvaluateRequest struct {
	Selections   scenario.RawSelections `json:"selections"`
	QalyScenario string                 `json:"qaly_scenario,omitempty"`
}

func (r EvaluateRequest) tag() costbenefit.QalyTag {
	if r.QalyScenario == "" {
		return costbenefit.QalyModerate
	}
	return costbenefit.QalyTag(r.QalyScenario)
}

type ProbabilityResponse struct {
	Scenario scenario.Scenario `json:"scenario"`
	scoring.UptakeResult
}

type EvaluateResponse struct {
	EvaluationID       string                       `json:"evaluation_id"`
	Scenario           scenario.Scenario            `json:"scenario"`
	Result             costbenefit.EvaluationResult `json:"result"`
	CostPerParticipant *float64                     `json:"cost_per_participant"`
	Band               scoring.UptakeBand           `json:"band"`
	Advice             string                       `json:"advice"`
}

// Validate checks raw selections and returns the normalized scenario.
// POST /api/v1/scenarios/validate
func (h *ScenariosHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var raw scenario.RawSelections
	if err := decodeJSON(r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.engine.Validate(raw)
	if err != nil {
		h.reject(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Probability returns uptake with its per-attribute breakdown.
// POST /api/v1/scenarios/probability
func (h *ScenariosHandler) Probability(w http.ResponseWriter, r *http.Request) {
	var raw scenario.RawSelections
	if err := decodeJSON(r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.engine.Validate(raw)
	if err != nil {
		h.reject(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProbabilityResponse{Scenario: s, UptakeResult: h.engine.Explain(s)})
}

// Evaluate runs the full cost-benefit evaluation.
// POST /api/v1/scenarios/evaluate
func (h *ScenariosHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, ok := h.assess(w, req)
	if !ok {
		return
	}

	id := uuid.New().String()
	h.events.Publish(hermes.SubjectScenarioEvaluated(id), hermes.ScenarioEvaluatedEvent{
		EvaluationID:       id,
		UptakeProbability:  a.Result.UptakeProbability,
		NetBenefit:         a.Result.NetBenefit,
		QalyScenario:       string(a.Result.QalyTag),
		CalibrationVersion: a.Result.CalibrationVersion,
	})

	writeJSON(w, http.StatusOK, EvaluateResponse{
		EvaluationID:       id,
		Scenario:           a.Scenario,
		Result:             a.Result,
		CostPerParticipant: a.CostPerParticipant,
		Band:               a.Uptake.Band,
		Advice:             a.Uptake.Advice,
	})
}

// assess validates and evaluates req, writing the error response itself on failure.
func (h *ScenariosHandler) assess(w http.ResponseWriter, req EvaluateRequest) (engine.Assessment, bool) {
	a, err := h.engine.Assess(req.Selections, req.tag())
	switch {
	case err == nil:
		h.metrics.observeEvaluation(string(a.Result.QalyTag), a.Result.UptakeProbability)
		return a, true
	case errors.Is(err, costbenefit.ErrInvalidQalyTag):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.reject(w, err)
	}
	return engine.Assessment{}, false
}

func (h *ScenariosHandler) reject(w http.ResponseWriter, err error) {
	var verr *scenario.ValidationError
	if errors.As(err, &verr) {
		h.metrics.observeRejection(string(verr.Reason))
	}
	if !writeValidationError(w, err) {
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
