package scenario

import (
	"fmt"
	"math"
)

// Reason identifies which validation rule rejected a set of selections.
type Reason string

const (
	ReasonMultipleSupportTypes  Reason = "multiple_support_types"
	ReasonMultipleDeliveryModes Reason = "multiple_delivery_modes"
	ReasonMultipleAccessibility Reason = "multiple_accessibility"
	ReasonMultipleFrequencies   Reason = "multiple_frequencies"
	ReasonMultipleDurations     Reason = "multiple_durations"
	ReasonRegionRequired        Reason = "region_required"
	ReasonInvalidCost           Reason = "invalid_cost"
)

// ValidationError rejects one evaluation attempt. It is never fatal.
type ValidationError struct {
	Reason  Reason `json:"reason"`
	Message string `json:"error"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid scenario (%s): %s", e.Reason, e.Message)
}

func reject(reason Reason, msg string) *ValidationError {
	return &ValidationError{Reason: reason, Message: msg}
}

// Validate checks raw selections and collapses them into a Scenario.
// Rules run in a fixed order and the first failing rule is reported.
func Validate(raw RawSelections) (Scenario, error) {
	if countTrue(raw.Community, raw.Counselling, raw.VR) > 1 {
		return Scenario{}, reject(ReasonMultipleSupportTypes, "select only one support programme: community, counselling, or VR")
	}
	if countTrue(raw.Virtual, raw.Hybrid) > 1 {
		return Scenario{}, reject(ReasonMultipleDeliveryModes, "select only one method: virtual or hybrid")
	}
	if raw.Local && raw.Wider {
		return Scenario{}, reject(ReasonMultipleAccessibility, "cannot select both local and wider community")
	}
	if raw.Weekly && raw.Monthly {
		return Scenario{}, reject(ReasonMultipleFrequencies, "cannot select both weekly and monthly")
	}
	if raw.TwoHour && raw.FourHour {
		return Scenario{}, reject(ReasonMultipleDurations, "cannot select both 2-hour and 4-hour sessions")
	}
	if raw.AdjustCosts && raw.Region == "" {
		return Scenario{}, reject(ReasonRegionRequired, "select a region when adjusting for cost of living")
	}
	if math.IsNaN(raw.Cost) || math.IsInf(raw.Cost, 0) || raw.Cost < 0 {
		return Scenario{}, reject(ReasonInvalidCost, "cost must be a non-negative number")
	}

	s := Scenario{
		Region:        raw.Region,
		AdjustCost:    raw.AdjustCosts,
		BaseCost:      raw.Cost,
		SupportType:   SupportNone,
		DeliveryMode:  DeliveryInPerson,
		Frequency:     FrequencyOther,
		Duration:      DurationOther,
		Accessibility: AccessibilityNone,
	}

	switch {
	case raw.Community:
		s.SupportType = SupportCommunity
	case raw.Counselling:
		s.SupportType = SupportCounselling
	case raw.VR:
		s.SupportType = SupportVR
	}

	switch {
	case raw.Virtual:
		s.DeliveryMode = DeliveryVirtual
	case raw.Hybrid:
		s.DeliveryMode = DeliveryHybrid
	}

	switch {
	case raw.Weekly:
		s.Frequency = FrequencyWeekly
	case raw.Monthly:
		s.Frequency = FrequencyMonthly
	}

	switch {
	case raw.TwoHour:
		s.Duration = DurationTwoHour
	case raw.FourHour:
		s.Duration = DurationFourHour
	}

	switch {
	case raw.Local:
		s.Accessibility = AccessibilityLocal
	case raw.Wider:
		s.Accessibility = AccessibilityWider
	}

	return s, nil
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
