package hermes

const (
	StreamName   = "LONELYLESS_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectSessionStarted(sessionID string) string { return "lonelyless.session." + sessionID + ".started" }
func SubjectSessionEnded(sessionID string) string   { return "lonelyless.session." + sessionID + ".ended" }

func SubjectScenarioEvaluated(scenarioID string) string {
	return "lonelyless.scenario." + scenarioID + ".evaluated"
}
func SubjectScenarioSaved(scenarioID string) string { return "lonelyless.scenario." + scenarioID + ".saved" }
