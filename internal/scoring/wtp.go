package scoring

// WTPEstimate is the willingness to pay (A$ per session) for one attribute
// level, estimated alongside the utility coefficients.
type WTPEstimate struct {
	Attribute   string  `json:"attribute" yaml:"attribute"`
	Coefficient string  `json:"coefficient" yaml:"coefficient"`
	WTP         float64 `json:"wtp" yaml:"wtp"`
	PValue      float64 `json:"p_value" yaml:"p_value"`
	StdError    float64 `json:"std_error" yaml:"std_error"`
}

// Significant reports whether the estimate is significant at level alpha.
func (e WTPEstimate) Significant(alpha float64) bool {
	return e.PValue < alpha
}

// DefaultWTP returns the main-model WTP estimates.
func DefaultWTP() []WTPEstimate {
	return []WTPEstimate{
		{Attribute: "Community engagement", Coefficient: CoefCommunity, WTP: 14.47, PValue: 0.000, StdError: 3.31},
		{Attribute: "Psychological counselling", Coefficient: CoefCounselling, WTP: 4.28, PValue: 0.245, StdError: 3.76},
		{Attribute: "Virtual reality", Coefficient: CoefVR, WTP: -9.58, PValue: 0.009, StdError: 3.72},
		{Attribute: "Virtual (method)", Coefficient: CoefVirtual, WTP: -11.69, PValue: 0.019, StdError: 5.02},
		{Attribute: "Hybrid (method)", Coefficient: CoefHybrid, WTP: -7.95, PValue: 0.001, StdError: 2.51},
		{Attribute: "Weekly (freq)", Coefficient: CoefWeekly, WTP: 16.93, PValue: 0.000, StdError: 2.73},
		{Attribute: "Monthly (freq)", Coefficient: CoefMonthly, WTP: 9.21, PValue: 0.005, StdError: 3.26},
		{Attribute: "2-hour interaction", Coefficient: CoefTwoHour, WTP: 5.08, PValue: 0.059, StdError: 2.69},
		{Attribute: "4-hour interaction", Coefficient: CoefFourHour, WTP: 5.85, PValue: 0.037, StdError: 2.79},
		{Attribute: "Local area accessibility", Coefficient: CoefLocal, WTP: 1.62, PValue: 0.712, StdError: 4.41},
		{Attribute: "Wider community accessibility", Coefficient: CoefWider, WTP: -13.99, PValue: 0.000, StdError: 3.98},
	}
}
