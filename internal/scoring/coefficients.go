package scoring

import (
	"fmt"
	"math"
	"sort"
)

// Coefficient names used by the uptake model.
const (
	CoefASCMean     = "ASC_mean"
	CoefASCSD       = "ASC_sd"
	CoefASCOptOut   = "ASC_optout"
	CoefCost        = "cost_cont"
	CoefCommunity   = "type_comm"
	CoefCounselling = "type_psych"
	CoefVR          = "type_vr"
	CoefVirtual     = "mode_virtual"
	CoefHybrid      = "mode_hybrid"
	CoefWeekly      = "freq_weekly"
	CoefMonthly     = "freq_monthly"
	CoefTwoHour     = "dur_2hrs"
	CoefFourHour    = "dur_4hrs"
	CoefLocal       = "dist_local"
	CoefWider       = "dist_signif"
)

var requiredCoefficients = []string{CoefASCMean, CoefASCOptOut, CoefCost}

// CoefficientSet maps attribute-level names to calibrated utility weights.
// The zero value is empty; build one with NewCoefficientSet. Attribute levels
// that are absent weigh 0.
type CoefficientSet struct {
	weights map[string]float64
}

// NewCoefficientSet copies weights into an immutable set.
func NewCoefficientSet(weights map[string]float64) CoefficientSet {
	cp := make(map[string]float64, len(weights))
	for k, v := range weights {
		cp[k] = v
	}
	return CoefficientSet{weights: cp}
}

// DefaultCoefficients returns the mixed-logit mean estimates from the main DCE.
func DefaultCoefficients() CoefficientSet {
	return NewCoefficientSet(map[string]float64{
		CoefASCMean:     -0.112,
		CoefASCSD:       1.161,
		CoefASCOptOut:   0.131,
		CoefCommunity:   0.527,
		CoefCounselling: 0.156,
		CoefVR:          -0.349,
		CoefVirtual:     -0.426,
		CoefHybrid:      -0.289,
		CoefWeekly:      0.617,
		CoefMonthly:     0.336,
		CoefTwoHour:     0.185,
		CoefFourHour:    0.213,
		CoefLocal:       0.059,
		CoefWider:       -0.509,
		CoefCost:        -0.036,
	})
}

// Get returns the weight for name, or 0 when the set has no such entry.
func (c CoefficientSet) Get(name string) float64 {
	return c.weights[name]
}

// Lookup reports whether name is present.
func (c CoefficientSet) Lookup(name string) (float64, bool) {
	v, ok := c.weights[name]
	return v, ok
}

// Names returns the coefficient names in sorted order.
func (c CoefficientSet) Names() []string {
	names := make([]string, 0, len(c.weights))
	for k := range c.weights {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the underlying weights.
func (c CoefficientSet) Map() map[string]float64 {
	cp := make(map[string]float64, len(c.weights))
	for k, v := range c.weights {
		cp[k] = v
	}
	return cp
}

// Validate checks that the intercepts and cost coefficient are present and
// every weight is finite.
func (c CoefficientSet) Validate() error {
	for _, name := range requiredCoefficients {
		if _, ok := c.weights[name]; !ok {
			return fmt.Errorf("missing coefficient %q", name)
		}
	}
	for _, name := range c.Names() {
		v := c.weights[name]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("coefficient %q is not finite: %f", name, v)
		}
	}
	return nil
}

// CostOfLivingTable maps region codes to cost multipliers.
type CostOfLivingTable struct {
	multipliers map[string]float64
}

// NewCostOfLivingTable copies multipliers into an immutable table.
func NewCostOfLivingTable(multipliers map[string]float64) CostOfLivingTable {
	cp := make(map[string]float64, len(multipliers))
	for k, v := range multipliers {
		cp[k] = v
	}
	return CostOfLivingTable{multipliers: cp}
}

// DefaultCostOfLiving returns the state and territory multipliers.
func DefaultCostOfLiving() CostOfLivingTable {
	return NewCostOfLivingTable(map[string]float64{
		"NSW": 1.10,
		"VIC": 1.05,
		"QLD": 1.00,
		"WA":  1.08,
		"SA":  1.02,
		"TAS": 1.03,
		"ACT": 1.15,
		"NT":  1.07,
	})
}

// Multiplier returns the multiplier for region.
func (t CostOfLivingTable) Multiplier(region string) (float64, bool) {
	v, ok := t.multipliers[region]
	return v, ok
}

// Regions returns the region codes in sorted order.
func (t CostOfLivingTable) Regions() []string {
	regions := make([]string, 0, len(t.multipliers))
	for k := range t.multipliers {
		regions = append(regions, k)
	}
	sort.Strings(regions)
	return regions
}

// Map returns a copy of the underlying multipliers.
func (t CostOfLivingTable) Map() map[string]float64 {
	cp := make(map[string]float64, len(t.multipliers))
	for k, v := range t.multipliers {
		cp[k] = v
	}
	return cp
}

// Validate checks that every multiplier is positive.
func (t CostOfLivingTable) Validate() error {
	for _, region := range t.Regions() {
		v := t.multipliers[region]
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("cost-of-living multiplier for %s must be positive, got %f", region, v)
		}
	}
	return nil
}
