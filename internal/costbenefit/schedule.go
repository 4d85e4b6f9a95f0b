package costbenefit

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidQalyTag is returned for a QALY scenario tag the table does not define.
	ErrInvalidQalyTag = errors.New("invalid QALY scenario tag")
	// ErrDivisionByZero marks a per-participant figure that is undefined at zero uptake.
	ErrDivisionByZero = errors.New("division by zero participants")
)

// CostItem is one line of a cost schedule: Amount charged Multiplier times.
type CostItem struct {
	Name       string  `json:"name" yaml:"name"`
	Amount     float64 `json:"amount" yaml:"amount"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// Total returns Amount * Multiplier.
func (c CostItem) Total() float64 {
	return c.Amount * c.Multiplier
}

// Schedule is an ordered list of cost items.
type Schedule []CostItem

// Total sums every item in order.
func (s Schedule) Total() float64 {
	var total float64
	for _, item := range s {
		total += item.Total()
	}
	return total
}

// Validate rejects unnamed, negative or non-finite items.
func (s Schedule) Validate() error {
	for i, item := range s {
		if item.Name == "" {
			return fmt.Errorf("cost item %d has no name", i)
		}
		if !finiteNonNegative(item.Amount) || !finiteNonNegative(item.Multiplier) {
			return fmt.Errorf("cost item %q must have non-negative amount and multiplier", item.Name)
		}
	}
	return nil
}

// DefaultFixedCosts are incurred regardless of uptake.
func DefaultFixedCosts() Schedule {
	return Schedule{
		{Name: "advertisement", Amount: 2978.80, Multiplier: 1},
		{Name: "training", Amount: 26863.00, Multiplier: 1},
	}
}

// DefaultVariableCosts scale with uptake.
func DefaultVariableCosts() Schedule {
	return Schedule{
		{Name: "printing", Amount: 0.12, Multiplier: 10000},
		{Name: "postage", Amount: 0.15, Multiplier: 10000},
		{Name: "admin", Amount: 49.99, Multiplier: 10},
		{Name: "trainer", Amount: 223.86, Multiplier: 100},
		{Name: "oncosts", Amount: 44.77, Multiplier: 100},
		{Name: "facilitator", Amount: 100.00, Multiplier: 100},
		{Name: "materials", Amount: 50.00, Multiplier: 100},
		{Name: "venue", Amount: 15.00, Multiplier: 100},
		{Name: "session_time", Amount: 20.00, Multiplier: 250},
		{Name: "travel", Amount: 10.00, Multiplier: 250},
	}
}

// QalyTag names a QALY-gain assumption.
type QalyTag string

const (
	QalyLow      QalyTag = "low"
	QalyModerate QalyTag = "moderate"
	QalyHigh     QalyTag = "high"
)

// QalyTable maps a QALY tag to the per-participant QALY gain.
type QalyTable map[QalyTag]float64

// DefaultQalyTable returns the low/moderate/high gains.
func DefaultQalyTable() QalyTable {
	return QalyTable{
		QalyLow:      0.02,
		QalyModerate: 0.05,
		QalyHigh:     0.10,
	}
}

// Gain returns the per-participant gain for tag.
func (q QalyTable) Gain(tag QalyTag) (float64, error) {
	v, ok := q[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQalyTag, tag)
	}
	return v, nil
}

// Tags returns the defined tags in sorted order.
func (q QalyTable) Tags() []QalyTag {
	tags := make([]QalyTag, 0, len(q))
	for t := range q {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
