package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DrGenie/LonelyLess-AU/internal/store"
)

// Title heads every rendered comparison document.
const Title = "LonelyLessAustralia - Scenarios Comparison"

// MinComparable is the number of saved scenarios a comparison needs.
const MinComparable = 2

var ErrTooFewScenarios = errors.New("at least two saved scenarios are required for comparison")

// Row is one saved scenario formatted for display.
type Row struct {
	Position        int    `json:"position"`
	Name            string `json:"name"`
	Region          string `json:"region"`
	CostAdjust      string `json:"cost_adjust"`
	CostPerSession  string `json:"cost_per_session"`
	Local           string `json:"local"`
	Wider           string `json:"wider"`
	Weekly          string `json:"weekly"`
	Monthly         string `json:"monthly"`
	Virtual         string `json:"virtual"`
	Hybrid          string `json:"hybrid"`
	TwoHour         string `json:"two_hour"`
	FourHour        string `json:"four_hour"`
	Community       string `json:"community"`
	Counselling     string `json:"counselling"`
	VR              string `json:"vr"`
	PredictedUptake string `json:"predicted_uptake"`
	NetBenefit      string `json:"net_benefit"`
}

// RequireComparable reports ErrTooFewScenarios when n is below MinComparable.
func RequireComparable(n int) error {
	if n < MinComparable {
		return fmt.Errorf("%w: have %d", ErrTooFewScenarios, n)
	}
	return nil
}

// Build formats saved entries in their stored order.
func Build(entries []store.SavedScenario) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, buildRow(e))
	}
	return rows
}

func buildRow(e store.SavedScenario) Row {
	s := e.Scenario
	raw := s.Raw()

	region := s.Region
	if region == "" {
		region = "None"
	}

	return Row{
		Position:        e.Position,
		Name:            e.Name,
		Region:          region,
		CostAdjust:      yesNo(s.AdjustCost),
		CostPerSession:  "A$" + money(s.BaseCost),
		Local:           yesNo(raw.Local),
		Wider:           yesNo(raw.Wider),
		Weekly:          yesNo(raw.Weekly),
		Monthly:         yesNo(raw.Monthly),
		Virtual:         yesNo(raw.Virtual),
		Hybrid:          yesNo(raw.Hybrid),
		TwoHour:         yesNo(raw.TwoHour),
		FourHour:        yesNo(raw.FourHour),
		Community:       yesNo(raw.Community),
		Counselling:     yesNo(raw.Counselling),
		VR:              yesNo(raw.VR),
		PredictedUptake: money(e.Result.UptakeProbability * 100),
		NetBenefit:      money(e.Result.NetBenefit),
	}
}

// Render lays rows out as a plain-text document, one block per scenario.
func Render(title string, rows []Row) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")

	for i, r := range rows {
		fmt.Fprintf(&b, "Scenario %d: %s\n", i+1, r.Name)
		line(&b, "State", r.Region)
		line(&b, "Cost Adjust", r.CostAdjust)
		line(&b, "Cost per Session", r.CostPerSession)
		line(&b, "Local", r.Local)
		line(&b, "Wider", r.Wider)
		line(&b, "Weekly", r.Weekly)
		line(&b, "Monthly", r.Monthly)
		line(&b, "Virtual", r.Virtual)
		line(&b, "Hybrid", r.Hybrid)
		line(&b, "2-Hour", r.TwoHour)
		line(&b, "4-Hour", r.FourHour)
		line(&b, "Community", r.Community)
		line(&b, "Counselling", r.Counselling)
		line(&b, "VR", r.VR)
		line(&b, "Predicted Uptake", r.PredictedUptake+"%")
		line(&b, "Net Benefit", "A$"+r.NetBenefit)
		b.WriteString("\n")
	}
	return b.String()
}

func line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s: %s\n", label, value)
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
