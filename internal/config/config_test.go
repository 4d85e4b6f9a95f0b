package config

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DrGenie/LonelyLess-AU/internal/costbenefit"
	"github.com/DrGenie/LonelyLess-AU/internal/scoring"
)

var envVars = []string{
	"LONELYLESS_PORT", "LONELYLESS_METRICS_PORT", "LONELYLESS_ADMIN_TOKEN",
	"LONELYLESS_DATABASE_URL", "LONELYLESS_HERMES_URL", "LONELYLESS_COHORT_SIZE",
	"LONELYLESS_VALUE_PER_QALY", "LONELYLESS_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RequestsPerMinute != 120 {
		t.Errorf("expected 120 requests per minute, got %d", cfg.Server.RequestsPerMinute)
	}
	if cfg.Database.URL != "" {
		t.Errorf("expected no database by default, got %s", cfg.Database.URL)
	}
	if cfg.Hermes.URL != "" {
		t.Errorf("expected no hermes by default, got %s", cfg.Hermes.URL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}

	cal := cfg.Calibration.ToCalibration()
	if cal.CohortSize != 250 {
		t.Errorf("expected cohort 250, got %f", cal.CohortSize)
	}
	if cal.ValuePerQaly != 50000 {
		t.Errorf("expected value per QALY 50000, got %f", cal.ValuePerQaly)
	}
	if math.Abs(cal.Coefficients.Get(scoring.CoefCost)-(-0.036)) > 1e-12 {
		t.Errorf("expected cost_cont -0.036, got %f", cal.Coefficients.Get(scoring.CoefCost))
	}
	if m, ok := cal.CostOfLiving.Multiplier("ACT"); !ok || m != 1.15 {
		t.Errorf("expected ACT multiplier 1.15, got %f (%v)", m, ok)
	}
	if g, err := cal.Qaly.Gain(costbenefit.QalyModerate); err != nil || g != 0.05 {
		t.Errorf("expected moderate gain 0.05, got %f (%v)", g, err)
	}
	if len(cal.VariableCosts) != 10 || len(cal.FixedCosts) != 2 {
		t.Errorf("unexpected schedule sizes: fixed=%d variable=%d", len(cal.FixedCosts), len(cal.VariableCosts))
	}
	if len(cal.WTP) != 11 {
		t.Errorf("expected 11 WTP estimates, got %d", len(cal.WTP))
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LONELYLESS_PORT", "9000")
	t.Setenv("LONELYLESS_METRICS_PORT", "9001")
	t.Setenv("LONELYLESS_ADMIN_TOKEN", "secret-token")
	t.Setenv("LONELYLESS_DATABASE_URL", "postgres://localhost/lonelyless_test")
	t.Setenv("LONELYLESS_HERMES_URL", "nats://nats:4222")
	t.Setenv("LONELYLESS_COHORT_SIZE", "500")
	t.Setenv("LONELYLESS_VALUE_PER_QALY", "40000")
	t.Setenv("LONELYLESS_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token 'secret-token', got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Database.URL != "postgres://localhost/lonelyless_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Database.URL)
	}
	if cfg.Hermes.URL != "nats://nats:4222" {
		t.Errorf("expected hermes URL, got '%s'", cfg.Hermes.URL)
	}
	if cfg.Calibration.CohortSize != 500 {
		t.Errorf("expected cohort 500, got %f", cfg.Calibration.CohortSize)
	}
	if cfg.Calibration.ValuePerQaly != 40000 {
		t.Errorf("expected value per QALY 40000, got %f", cfg.Calibration.ValuePerQaly)
	}
	if cfg.Logging.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.Logging.SlogLevel())
	}
}

func TestLoadFileOverridesSingleCoefficient(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9100
calibration:
  version: trial-b
  coefficients:
    cost_cont: -0.05
  qaly:
    very_high: 0.2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}

	cal := cfg.Calibration.ToCalibration()
	if cal.Version != "trial-b" {
		t.Errorf("expected version trial-b, got %s", cal.Version)
	}
	if cal.Coefficients.Get(scoring.CoefCost) != -0.05 {
		t.Errorf("expected overridden cost_cont -0.05, got %f", cal.Coefficients.Get(scoring.CoefCost))
	}
	// Keys not named in the file keep their defaults.
	if cal.Coefficients.Get(scoring.CoefCommunity) != 0.527 {
		t.Errorf("expected default type_comm 0.527, got %f", cal.Coefficients.Get(scoring.CoefCommunity))
	}
	if _, err := cal.Qaly.Gain("very_high"); err != nil {
		t.Errorf("expected added QALY tag, got %v", err)
	}
	if _, err := cal.Qaly.Gain(costbenefit.QalyLow); err != nil {
		t.Errorf("expected default QALY tag to survive, got %v", err)
	}
}

func TestLoadFileReplacesSchedules(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
calibration:
  fixed_costs:
    - name: advertisement
      amount: 1000
      multiplier: 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cal := cfg.Calibration.ToCalibration()
	if len(cal.FixedCosts) != 1 || cal.FixedCosts.Total() != 1000 {
		t.Errorf("expected single fixed cost of 1000, got %+v", cal.FixedCosts)
	}
}

func TestLoadRejectsInvalidCalibration(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
calibration:
  cost_of_living:
    NSW: -1
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for negative multiplier")
	}
	if !strings.Contains(err.Error(), "invalid calibration") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := (LoggingConfig{Level: in}).SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
