package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrGenie/LonelyLess-AU/internal/costbenefit"
	"github.com/DrGenie/LonelyLess-AU/internal/scenario"
	"github.com/DrGenie/LonelyLess-AU/internal/store"
)

func savedEntries(t *testing.T) []store.SavedScenario {
	t.Helper()

	baseline, err := scenario.Validate(scenario.RawSelections{})
	require.NoError(t, err)
	community, err := scenario.Validate(scenario.RawSelections{
		Region: "NSW", AdjustCosts: true, Cost: 20.125,
		Community: true, Weekly: true, TwoHour: true, Local: true,
	})
	require.NoError(t, err)

	return []store.SavedScenario{
		{
			Position: 1, Name: "Scenario 1", Scenario: baseline,
			Result: costbenefit.EvaluationResult{UptakeProbability: 0.439547, NetBenefit: 221111.987},
		},
		{
			Position: 2, Name: "Scenario 2", Scenario: community,
			Result: costbenefit.EvaluationResult{UptakeProbability: 0.5873, NetBenefit: -1234.5},
		},
	}
}

func TestBuildRows(t *testing.T) {
	rows := Build(savedEntries(t))
	require.Len(t, rows, 2)

	base := rows[0]
	assert.Equal(t, "Scenario 1", base.Name)
	assert.Equal(t, "None", base.Region)
	assert.Equal(t, "No", base.CostAdjust)
	assert.Equal(t, "A$0.00", base.CostPerSession)
	assert.Equal(t, "No", base.Community)
	assert.Equal(t, "43.95", base.PredictedUptake)
	assert.Equal(t, "221111.99", base.NetBenefit)

	comm := rows[1]
	assert.Equal(t, 2, comm.Position)
	assert.Equal(t, "NSW", comm.Region)
	assert.Equal(t, "Yes", comm.CostAdjust)
	assert.Equal(t, "A$20.13", comm.CostPerSession)
	assert.Equal(t, "Yes", comm.Community)
	assert.Equal(t, "No", comm.Counselling)
	assert.Equal(t, "Yes", comm.Weekly)
	assert.Equal(t, "Yes", comm.TwoHour)
	assert.Equal(t, "Yes", comm.Local)
	assert.Equal(t, "No", comm.Wider)
	assert.Equal(t, "58.73", comm.PredictedUptake)
	assert.Equal(t, "-1234.50", comm.NetBenefit)
}

func TestBuildEmpty(t *testing.T) {
	rows := Build(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRender(t *testing.T) {
	doc := Render(Title, Build(savedEntries(t)))

	assert.True(t, strings.HasPrefix(doc, Title+"\n"))
	assert.Contains(t, doc, "Scenario 1: Scenario 1\n")
	assert.Contains(t, doc, "Scenario 2: Scenario 2\n")
	assert.Contains(t, doc, "  State: None\n")
	assert.Contains(t, doc, "  Cost per Session: A$20.13\n")
	assert.Contains(t, doc, "  Predicted Uptake: 58.73%\n")
	assert.Contains(t, doc, "  Net Benefit: A$221111.99\n")
	assert.Less(t, strings.Index(doc, "Scenario 1:"), strings.Index(doc, "Scenario 2:"))
}

func TestRequireComparable(t *testing.T) {
	assert.ErrorIs(t, RequireComparable(0), ErrTooFewScenarios)
	assert.ErrorIs(t, RequireComparable(1), ErrTooFewScenarios)
	assert.NoError(t, RequireComparable(2))
	assert.NoError(t, RequireComparable(5))
}
