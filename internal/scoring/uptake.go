package scoring

import (
	"math"

	"github.com/DrGenie/LonelyLess-AU/internal/scenario"
)

// FactorResult captures one utility term's contribution.
type FactorResult struct {
	Name         string  `json:"name"`
	Level        string  `json:"level"`
	Value        float64 `json:"value"`
	Coefficient  float64 `json:"coefficient"`
	Contribution float64 `json:"contribution"`
}

// UptakeResult is the full uptake computation for one scenario.
type UptakeResult struct {
	Probability   float64        `json:"probability"`
	UptakePercent float64        `json:"uptake_percent"`
	AltUtility    float64        `json:"alt_utility"`
	OptOutUtility float64        `json:"optout_utility"`
	AdjustedCost  float64        `json:"adjusted_cost"`
	Factors       []FactorResult `json:"factors"`
	Band          UptakeBand     `json:"band"`
	Advice        string         `json:"advice"`
}

// UptakeModel is a two-alternative logit: the programme versus opting out.
type UptakeModel struct {
	coefficients CoefficientSet
	costOfLiving CostOfLivingTable
}

// NewUptakeModel binds a model to one calibration.
func NewUptakeModel(coefficients CoefficientSet, costOfLiving CostOfLivingTable) *UptakeModel {
	return &UptakeModel{coefficients: coefficients, costOfLiving: costOfLiving}
}

// Probability is a convenience wrapper for one-off computations.
func Probability(s scenario.Scenario, coefficients CoefficientSet, costOfLiving CostOfLivingTable) float64 {
	return NewUptakeModel(coefficients, costOfLiving).Probability(s)
}

// AdjustedCost applies the region's cost-of-living multiplier when adjustment
// is enabled and the region is known; otherwise the base cost is returned.
func (m *UptakeModel) AdjustedCost(s scenario.Scenario) float64 {
	cost := s.BaseCost
	if s.AdjustCost && s.Region != "" {
		if mult, ok := m.costOfLiving.Multiplier(s.Region); ok {
			cost *= mult
		}
	}
	return cost
}

// Utility returns the systematic utility of taking up the programme.
func (m *UptakeModel) Utility(s scenario.Scenario) float64 {
	var total float64
	for _, f := range m.factors(s) {
		total += f.Contribution
	}
	return total
}

// OptOutUtility is the opt-out alternative's constant.
func (m *UptakeModel) OptOutUtility() float64 {
	return m.coefficients.Get(CoefASCOptOut)
}

// Probability returns exp(U_alt) / (exp(U_alt) + exp(U_optout)).
func (m *UptakeModel) Probability(s scenario.Scenario) float64 {
	return logit(m.Utility(s), m.OptOutUtility())
}

// Explain returns the probability together with its utility breakdown.
func (m *UptakeModel) Explain(s scenario.Scenario) UptakeResult {
	factors := m.factors(s)

	var alt float64
	for _, f := range factors {
		alt += f.Contribution
	}
	opt := m.OptOutUtility()
	p := logit(alt, opt)
	band := BandFor(p)

	return UptakeResult{
		Probability:   p,
		UptakePercent: p * 100,
		AltUtility:    alt,
		OptOutUtility: opt,
		AdjustedCost:  m.AdjustedCost(s),
		Factors:       factors,
		Band:          band,
		Advice:        band.Advice(),
	}
}

// factors lists every utility term in a fixed order. Unselected levels are
// included with value 0 so the breakdown always has the same shape.
func (m *UptakeModel) factors(s scenario.Scenario) []FactorResult {
	factors := []FactorResult{
		{Name: CoefASCMean, Level: "intercept", Value: 1},
		indicator(CoefCommunity, string(scenario.SupportCommunity), s.SupportType == scenario.SupportCommunity),
		indicator(CoefCounselling, string(scenario.SupportCounselling), s.SupportType == scenario.SupportCounselling),
		indicator(CoefVR, string(scenario.SupportVR), s.SupportType == scenario.SupportVR),
		indicator(CoefVirtual, string(scenario.DeliveryVirtual), s.DeliveryMode == scenario.DeliveryVirtual),
		indicator(CoefHybrid, string(scenario.DeliveryHybrid), s.DeliveryMode == scenario.DeliveryHybrid),
		indicator(CoefWeekly, string(scenario.FrequencyWeekly), s.Frequency == scenario.FrequencyWeekly),
		indicator(CoefMonthly, string(scenario.FrequencyMonthly), s.Frequency == scenario.FrequencyMonthly),
		indicator(CoefTwoHour, string(scenario.DurationTwoHour), s.Duration == scenario.DurationTwoHour),
		indicator(CoefFourHour, string(scenario.DurationFourHour), s.Duration == scenario.DurationFourHour),
		indicator(CoefLocal, string(scenario.AccessibilityLocal), s.Accessibility == scenario.AccessibilityLocal),
		indicator(CoefWider, string(scenario.AccessibilityWider), s.Accessibility == scenario.AccessibilityWider),
		{Name: CoefCost, Level: "cost", Value: m.AdjustedCost(s)},
	}

	for i := range factors {
		factors[i].Coefficient = m.coefficients.Get(factors[i].Name)
		factors[i].Contribution = factors[i].Value * factors[i].Coefficient
	}
	return factors
}

func indicator(name, level string, selected bool) FactorResult {
	f := FactorResult{Name: name, Level: level}
	if selected {
		f.Value = 1
	}
	return f
}

// logit computes the binary choice probability as 1/(1+exp(opt-alt)), which is
// algebraically exp(alt)/(exp(alt)+exp(opt)) but cannot produce Inf/Inf.
func logit(alt, opt float64) float64 {
	return 1 / (1 + math.Exp(opt-alt))
}
