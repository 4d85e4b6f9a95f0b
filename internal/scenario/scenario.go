package scenario

// SupportType is the kind of support programme offered.
type SupportType string

const (
	SupportNone        SupportType = "none"
	SupportCommunity   SupportType = "community"
	SupportCounselling SupportType = "counselling"
	SupportVR          SupportType = "vr"
)

// DeliveryMode is how sessions are delivered.
type DeliveryMode string

const (
	DeliveryInPerson DeliveryMode = "in_person"
	DeliveryVirtual  DeliveryMode = "virtual"
	DeliveryHybrid   DeliveryMode = "hybrid"
)

// Frequency is how often sessions run.
type Frequency string

const (
	FrequencyOther   Frequency = "other"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Duration is the length of one session.
type Duration string

const (
	DurationOther    Duration = "other"
	DurationTwoHour  Duration = "two_hour"
	DurationFourHour Duration = "four_hour"
)

// Accessibility is how far participants travel to attend.
type Accessibility string

const (
	AccessibilityNone  Accessibility = "none"
	AccessibilityLocal Accessibility = "local"
	AccessibilityWider Accessibility = "wider"
)

// Scenario is a validated programme configuration. Each choice group holds
// exactly one tag; the first tag of every group is its reference level.
// Build one with Validate.
type Scenario struct {
	Region        string        `json:"region,omitempty"`
	AdjustCost    bool          `json:"adjust_cost"`
	BaseCost      float64       `json:"base_cost"`
	SupportType   SupportType   `json:"support_type"`
	DeliveryMode  DeliveryMode  `json:"delivery_mode"`
	Frequency     Frequency     `json:"frequency"`
	Duration      Duration      `json:"duration"`
	Accessibility Accessibility `json:"accessibility"`
}

// RawSelections is the flat set of independent toggles a UI collects.
type RawSelections struct {
	Region      string  `json:"region"`
	AdjustCosts bool    `json:"adjust_costs"`
	Cost        float64 `json:"cost"`

	Community   bool `json:"community"`
	Counselling bool `json:"counselling"`
	VR          bool `json:"vr"`

	Virtual bool `json:"virtual"`
	Hybrid  bool `json:"hybrid"`

	Weekly  bool `json:"weekly"`
	Monthly bool `json:"monthly"`

	TwoHour  bool `json:"two_hour"`
	FourHour bool `json:"four_hour"`

	Local bool `json:"local"`
	Wider bool `json:"wider"`
}

// Raw expands a scenario back into the toggle representation. Validate(s.Raw())
// returns s unchanged.
func (s Scenario) Raw() RawSelections {
	return RawSelections{
		Region:      s.Region,
		AdjustCosts: s.AdjustCost,
		Cost:        s.BaseCost,
		Community:   s.SupportType == SupportCommunity,
		Counselling: s.SupportType == SupportCounselling,
		VR:          s.SupportType == SupportVR,
		Virtual:     s.DeliveryMode == DeliveryVirtual,
		Hybrid:      s.DeliveryMode == DeliveryHybrid,
		Weekly:      s.Frequency == FrequencyWeekly,
		Monthly:     s.Frequency == FrequencyMonthly,
		TwoHour:     s.Duration == DurationTwoHour,
		FourHour:    s.Duration == DurationFourHour,
		Local:       s.Accessibility == AccessibilityLocal,
		Wider:       s.Accessibility == AccessibilityWider,
	}
}
