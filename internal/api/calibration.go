package api

import (
	"net/http"
	"strconv"

	"github.com/DrGenie/LonelyLess-AU/internal/costbenefit"
	"github.com/DrGenie/LonelyLess-AU/internal/engine"
	"github.com/DrGenie/LonelyLess-AU/internal/scoring"
)

type CalibrationHandler struct {
	engine *engine.Engine
}

func NewCalibrationHandler(e *engine.Engine) *CalibrationHandler {
	return &CalibrationHandler{engine: e}
}

type CalibrationSummary struct {
	Version       string                          `json:"version"`
	Coefficients  map[string]float64              `json:"coefficients"`
	CostOfLiving  map[string]float64              `json:"cost_of_living"`
	FixedCosts    costbenefit.Schedule            `json:"fixed_costs"`
	VariableCosts costbenefit.Schedule            `json:"variable_costs"`
	FixedTotal    float64                         `json:"fixed_total"`
	VariableTotal float64                         `json:"variable_total"`
	Qaly          map[costbenefit.QalyTag]float64 `json:"qaly"`
	ValuePerQaly  float64                         `json:"value_per_qaly"`
	CohortSize    float64                         `json:"cohort_size"`
}

// Get returns the calibration the engine evaluates with.
// GET /api/v1/calibration
func (h *CalibrationHandler) Get(w http.ResponseWriter, r *http.Request) {
	cal := h.engine.Calibration()
	qaly := make(map[costbenefit.QalyTag]float64, len(cal.Qaly))
	for k, v := range cal.Qaly {
		qaly[k] = v
	}
	writeJSON(w, http.StatusOK, CalibrationSummary{
		Version:       cal.Version,
		Coefficients:  cal.Coefficients.Map(),
		CostOfLiving:  cal.CostOfLiving.Map(),
		FixedCosts:    cal.FixedCosts,
		VariableCosts: cal.VariableCosts,
		FixedTotal:    cal.FixedCosts.Total(),
		VariableTotal: cal.VariableCosts.Total(),
		Qaly:          qaly,
		ValuePerQaly:  cal.ValuePerQaly,
		CohortSize:    cal.CohortSize,
	})
}

// WTP returns the willingness-to-pay table. ?alpha= filters to significant estimates.
// GET /api/v1/calibration/wtp
func (h *CalibrationHandler) WTP(w http.ResponseWriter, r *http.Request) {
	estimates := h.engine.WTP()

	if v := r.URL.Query().Get("alpha"); v != "" {
		alpha, err := strconv.ParseFloat(v, 64)
		if err != nil || alpha <= 0 || alpha > 1 {
			writeError(w, http.StatusBadRequest, "invalid alpha")
			return
		}
		filtered := make([]scoring.WTPEstimate, 0, len(estimates))
		for _, e := range estimates {
			if e.Significant(alpha) {
				filtered = append(filtered, e)
			}
		}
		estimates = filtered
	}
	writeJSON(w, http.StatusOK, estimates)
}
