package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/DrGenie/LonelyLess-AU/internal/costbenefit"
	"github.com/DrGenie/LonelyLess-AU/internal/scenario"
	"github.com/DrGenie/LonelyLess-AU/internal/scoring"
)

// Assessment bundles everything derived from one set of raw selections.
type Assessment struct {
	Scenario scenario.Scenario            `json:"scenario"`
	Uptake   scoring.UptakeResult         `json:"uptake"`
	Result   costbenefit.EvaluationResult `json:"result"`
	// CostPerParticipant is nil when no one takes up the programme.
	CostPerParticipant *float64 `json:"cost_per_participant"`
}

// Engine is the decision engine bound to one calibration.
type Engine struct {
	calibration costbenefit.Calibration
	calc        *costbenefit.Calculator
	logger      *slog.Logger
}

// New validates cal and returns an engine that uses it for every call.
func New(cal costbenefit.Calibration, logger *slog.Logger) (*Engine, error) {
	if err := cal.Validate(); err != nil {
		return nil, fmt.Errorf("invalid calibration: %w", err)
	}
	cal = cal.Clone()
	return &Engine{
		calibration: cal,
		calc:        costbenefit.NewCalculator(cal),
		logger:      logger,
	}, nil
}

// Calibration returns a copy of the calibration the engine was built with.
func (e *Engine) Calibration() costbenefit.Calibration {
	return e.calibration.Clone()
}

// WTP returns the willingness-to-pay estimates shipped with the calibration.
func (e *Engine) WTP() []scoring.WTPEstimate {
	return append([]scoring.WTPEstimate(nil), e.calibration.WTP...)
}

func (e *Engine) Validate(raw scenario.RawSelections) (scenario.Scenario, error) {
	s, err := scenario.Validate(raw)
	if err != nil {
		e.logger.Debug("scenario rejected", "error", err)
	}
	return s, err
}

func (e *Engine) Probability(s scenario.Scenario) float64 {
	return e.calc.Uptake().Probability(s)
}

// Explain returns the uptake probability with its per-attribute breakdown.
func (e *Engine) Explain(s scenario.Scenario) scoring.UptakeResult {
	return e.calc.Uptake().Explain(s)
}

func (e *Engine) Evaluate(s scenario.Scenario, tag costbenefit.QalyTag) (costbenefit.EvaluationResult, error) {
	return e.calc.Evaluate(s, tag)
}

// Assess validates raw, then explains and evaluates the scenario with a
// single uptake computation.
func (e *Engine) Assess(raw scenario.RawSelections, tag costbenefit.QalyTag) (Assessment, error) {
	s, err := e.Validate(raw)
	if err != nil {
		return Assessment{}, err
	}

	uptake := e.calc.Uptake().Explain(s)
	result, err := e.calc.EvaluateProbability(uptake.Probability, tag)
	if err != nil {
		return Assessment{}, err
	}

	a := Assessment{Scenario: s, Uptake: uptake, Result: result}
	cpp, err := result.CostPerParticipant()
	switch {
	case err == nil:
		a.CostPerParticipant = &cpp
	case errors.Is(err, costbenefit.ErrDivisionByZero):
		e.logger.Info("cost per participant undefined", "participants", result.ParticipantCount)
	default:
		return Assessment{}, err
	}

	e.logger.Debug("scenario assessed",
		"support_type", s.SupportType,
		"uptake", uptake.Probability,
		"net_benefit", result.NetBenefit,
		"qaly_scenario", tag,
	)
	return a, nil
}
