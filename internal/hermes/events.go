package hermes

import "time"

type SessionStartedEvent struct {
	SessionID string    `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
}

type SessionEndedEvent struct {
	SessionID      string    `json:"session_id"`
	SavedScenarios int       `json:"saved_scenarios"`
	EndedAt        time.Time `json:"ended_at"`
}

type ScenarioEvaluatedEvent struct {
	EvaluationID       string  `json:"evaluation_id"`
	UptakeProbability  float64 `json:"uptake_probability"`
	NetBenefit         float64 `json:"net_benefit"`
	QalyScenario       string  `json:"qaly_scenario"`
	CalibrationVersion string  `json:"calibration_version,omitempty"`
}

type ScenarioSavedEvent struct {
	ScenarioID        string    `json:"scenario_id"`
	SessionID         string    `json:"session_id"`
	Name              string    `json:"name"`
	UptakeProbability float64   `json:"uptake_probability"`
	NetBenefit        float64   `json:"net_benefit"`
	SavedAt           time.Time `json:"saved_at"`
}
