package scenario

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAllDefaults(t *testing.T) {
	s, err := Validate(RawSelections{Cost: 20})
	require.NoError(t, err)

	assert.Equal(t, SupportNone, s.SupportType)
	assert.Equal(t, DeliveryInPerson, s.DeliveryMode)
	assert.Equal(t, FrequencyOther, s.Frequency)
	assert.Equal(t, DurationOther, s.Duration)
	assert.Equal(t, AccessibilityNone, s.Accessibility)
	assert.False(t, s.AdjustCost)
	assert.Equal(t, 20.0, s.BaseCost)
}

func TestValidateRejectsConflictsPerGroup(t *testing.T) {
	tests := []struct {
		name   string
		raw    RawSelections
		reason Reason
	}{
		{"community+counselling", RawSelections{Community: true, Counselling: true}, ReasonMultipleSupportTypes},
		{"community+vr", RawSelections{Community: true, VR: true}, ReasonMultipleSupportTypes},
		{"counselling+vr", RawSelections{Counselling: true, VR: true}, ReasonMultipleSupportTypes},
		{"all support", RawSelections{Community: true, Counselling: true, VR: true}, ReasonMultipleSupportTypes},
		{"virtual+hybrid", RawSelections{Virtual: true, Hybrid: true}, ReasonMultipleDeliveryModes},
		{"local+wider", RawSelections{Local: true, Wider: true}, ReasonMultipleAccessibility},
		{"weekly+monthly", RawSelections{Weekly: true, Monthly: true}, ReasonMultipleFrequencies},
		{"2h+4h", RawSelections{TwoHour: true, FourHour: true}, ReasonMultipleDurations},
		{"adjust without region", RawSelections{AdjustCosts: true}, ReasonRegionRequired},
		{"negative cost", RawSelections{Cost: -1}, ReasonInvalidCost},
		{"nan cost", RawSelections{Cost: math.NaN()}, ReasonInvalidCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.raw)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
			assert.Equal(t, tt.reason, verr.Reason)
			assert.NotEmpty(t, verr.Message)
		})
	}
}

func TestValidateFirstFailingRuleWins(t *testing.T) {
	// Conflicts in every group plus a missing region: support type is checked first.
	raw := RawSelections{
		AdjustCosts: true,
		Community:   true, VR: true,
		Virtual: true, Hybrid: true,
		Weekly: true, Monthly: true,
		TwoHour: true, FourHour: true,
		Local: true, Wider: true,
	}
	_, err := Validate(raw)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonMultipleSupportTypes, verr.Reason)

	// Accessibility is checked before frequency.
	raw = RawSelections{Weekly: true, Monthly: true, Local: true, Wider: true}
	_, err = Validate(raw)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonMultipleAccessibility, verr.Reason)
}

func TestValidateCollapsesTags(t *testing.T) {
	raw := RawSelections{
		Region:      "NSW",
		AdjustCosts: true,
		Cost:        35,
		Counselling: true,
		Hybrid:      true,
		Monthly:     true,
		FourHour:    true,
		Wider:       true,
	}
	s, err := Validate(raw)
	require.NoError(t, err)

	assert.Equal(t, Scenario{
		Region:        "NSW",
		AdjustCost:    true,
		BaseCost:      35,
		SupportType:   SupportCounselling,
		DeliveryMode:  DeliveryHybrid,
		Frequency:     FrequencyMonthly,
		Duration:      DurationFourHour,
		Accessibility: AccessibilityWider,
	}, s)
}

func TestScenarioRawRoundTrip(t *testing.T) {
	raw := RawSelections{Region: "VIC", Cost: 10, VR: true, Virtual: true, Weekly: true, TwoHour: true, Local: true}
	s, err := Validate(raw)
	require.NoError(t, err)

	again, err := Validate(s.Raw())
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Reason: ReasonRegionRequired, Message: "select a region"}
	assert.Contains(t, err.Error(), "region_required")
}
