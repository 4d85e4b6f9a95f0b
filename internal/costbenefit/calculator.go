package costbenefit

import (
	"errors"
	"fmt"

	"github.com/DrGenie/LonelyLess-AU/internal/scenario"
	"github.com/DrGenie/LonelyLess-AU/internal/scoring"
)

// Calibration is the versioned set of constants an evaluation depends on.
type Calibration struct {
	Version       string
	Coefficients  scoring.CoefficientSet
	CostOfLiving  scoring.CostOfLivingTable
	FixedCosts    Schedule
	VariableCosts Schedule
	Qaly          QalyTable
	ValuePerQaly  float64
	CohortSize    float64
	WTP           []scoring.WTPEstimate
}

// DefaultCalibration returns the published model calibration.
func DefaultCalibration() Calibration {
	return Calibration{
		Version:       "main",
		Coefficients:  scoring.DefaultCoefficients(),
		CostOfLiving:  scoring.DefaultCostOfLiving(),
		FixedCosts:    DefaultFixedCosts(),
		VariableCosts: DefaultVariableCosts(),
		Qaly:          DefaultQalyTable(),
		ValuePerQaly:  50000,
		CohortSize:    250,
		WTP:           scoring.DefaultWTP(),
	}
}

// Clone returns a copy of c that shares no schedules, QALY table or WTP rows
// with it. Coefficient and cost-of-living tables are immutable and shared.
func (c Calibration) Clone() Calibration {
	out := c
	out.FixedCosts = append(Schedule(nil), c.FixedCosts...)
	out.VariableCosts = append(Schedule(nil), c.VariableCosts...)
	out.WTP = append([]scoring.WTPEstimate(nil), c.WTP...)
	if c.Qaly != nil {
		out.Qaly = make(QalyTable, len(c.Qaly))
		for k, v := range c.Qaly {
			out.Qaly[k] = v
		}
	}
	return out
}

// Validate checks every table in the calibration.
func (c Calibration) Validate() error {
	if err := c.Coefficients.Validate(); err != nil {
		return fmt.Errorf("coefficients: %w", err)
	}
	if err := c.CostOfLiving.Validate(); err != nil {
		return fmt.Errorf("cost of living: %w", err)
	}
	if err := c.FixedCosts.Validate(); err != nil {
		return fmt.Errorf("fixed costs: %w", err)
	}
	if err := c.VariableCosts.Validate(); err != nil {
		return fmt.Errorf("variable costs: %w", err)
	}
	if len(c.Qaly) == 0 {
		return errors.New("qaly table is empty")
	}
	for _, tag := range c.Qaly.Tags() {
		if !finiteNonNegative(c.Qaly[tag]) {
			return fmt.Errorf("qaly gain for %q must be non-negative", tag)
		}
	}
	if !finiteNonNegative(c.ValuePerQaly) {
		return fmt.Errorf("value per QALY must be non-negative, got %f", c.ValuePerQaly)
	}
	if !finiteNonNegative(c.CohortSize) {
		return fmt.Errorf("cohort size must be non-negative, got %f", c.CohortSize)
	}
	return nil
}

// EvaluationResult is the outcome of one evaluation. Build it with Calculator.Evaluate.
type EvaluationResult struct {
	UptakeProbability  float64 `json:"uptake_probability"`
	ParticipantCount   float64 `json:"participant_count"`
	TotalQALY          float64 `json:"total_qaly"`
	TotalCost          float64 `json:"total_cost"`
	MonetisedBenefit   float64 `json:"monetised_benefit"`
	NetBenefit         float64 `json:"net_benefit"`
	QalyTag            QalyTag `json:"qaly_scenario"`
	CalibrationVersion string  `json:"calibration_version,omitempty"`
}

// CostPerParticipant returns TotalCost / ParticipantCount, or ErrDivisionByZero
// when nobody takes up the programme.
func (r EvaluationResult) CostPerParticipant() (float64, error) {
	if r.ParticipantCount == 0 {
		return 0, ErrDivisionByZero
	}
	return r.TotalCost / r.ParticipantCount, nil
}

// Calculator combines the uptake model with the cost and QALY schedules.
type Calculator struct {
	calibration Calibration
	uptake      *scoring.UptakeModel
}

// NewCalculator binds a calculator to a copy of cal. The calibration is not
// validated here.
func NewCalculator(cal Calibration) *Calculator {
	cal = cal.Clone()
	return &Calculator{
		calibration: cal,
		uptake:      scoring.NewUptakeModel(cal.Coefficients, cal.CostOfLiving),
	}
}

// Uptake exposes the bound uptake model.
func (c *Calculator) Uptake() *scoring.UptakeModel {
	return c.uptake
}

// Evaluate is a convenience wrapper for one-off evaluations against cal.
func Evaluate(s scenario.Scenario, cal Calibration, tag QalyTag) (EvaluationResult, error) {
	return NewCalculator(cal).Evaluate(s, tag)
}

// Evaluate computes participants, costs and benefits for s under the QALY
// assumption tag. The uptake probability is computed once.
func (c *Calculator) Evaluate(s scenario.Scenario, tag QalyTag) (EvaluationResult, error) {
	gain, err := c.calibration.Qaly.Gain(tag)
	if err != nil {
		return EvaluationResult{}, err
	}
	return c.evaluate(c.uptake.Probability(s), gain, tag), nil
}

// EvaluateProbability runs the financial model for an already computed uptake
// probability p.
func (c *Calculator) EvaluateProbability(p float64, tag QalyTag) (EvaluationResult, error) {
	gain, err := c.calibration.Qaly.Gain(tag)
	if err != nil {
		return EvaluationResult{}, err
	}
	return c.evaluate(p, gain, tag), nil
}

func (c *Calculator) evaluate(p, gain float64, tag QalyTag) EvaluationResult {
	cal := c.calibration

	participants := cal.CohortSize * p
	totalQaly := participants * gain
	// Variable costs scale with the uptake probability, not the participant count.
	totalCost := cal.FixedCosts.Total() + p*cal.VariableCosts.Total()
	benefit := totalQaly * cal.ValuePerQaly

	return EvaluationResult{
		UptakeProbability:  p,
		ParticipantCount:   participants,
		TotalQALY:          totalQaly,
		TotalCost:          totalCost,
		MonetisedBenefit:   benefit,
		NetBenefit:         benefit - totalCost,
		QalyTag:            tag,
		CalibrationVersion: cal.Version,
	}
}
