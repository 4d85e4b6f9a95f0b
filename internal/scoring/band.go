package scoring

// UptakeBand classifies a predicted uptake for reporting.
type UptakeBand string

const (
	BandLow      UptakeBand = "low"
	BandModerate UptakeBand = "moderate"
	BandHigh     UptakeBand = "high"
)

// BandFor maps a probability to its band: below 30% is low, below 70% moderate.
func BandFor(p float64) UptakeBand {
	pct := p * 100
	switch {
	case pct < 30:
		return BandLow
	case pct < 70:
		return BandModerate
	default:
		return BandHigh
	}
}

// Advice returns the recommendation shown alongside a band.
func (b UptakeBand) Advice() string {
	switch b {
	case BandLow:
		return "Low uptake. Adjust programme cost or enhance local accessibility."
	case BandModerate:
		return "Moderate uptake. Consider increasing session frequency or optimising cost."
	default:
		return "High uptake. The current configuration is effective."
	}
}
