package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DrGenie/LonelyLess-AU/internal/costbenefit"
	"github.com/DrGenie/LonelyLess-AU/internal/scoring"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Hermes      HermesConfig      `yaml:"hermes"`
	Calibration CalibrationConfig `yaml:"calibration"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type ServerConfig struct {
	Port              int    `yaml:"port"`
	MetricsPort       int    `yaml:"metrics_port"`
	AdminToken        string `yaml:"admin_token"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

// CalibrationConfig is the file representation of costbenefit.Calibration.
type CalibrationConfig struct {
	Version       string                 `yaml:"version"`
	Coefficients  map[string]float64     `yaml:"coefficients"`
	CostOfLiving  map[string]float64     `yaml:"cost_of_living"`
	FixedCosts    []costbenefit.CostItem `yaml:"fixed_costs"`
	VariableCosts []costbenefit.CostItem `yaml:"variable_costs"`
	Qaly          map[string]float64     `yaml:"qaly"`
	ValuePerQaly  float64                `yaml:"value_per_qaly"`
	CohortSize    float64                `yaml:"cohort_size"`
	WTP           []scoring.WTPEstimate  `yaml:"wtp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SlogLevel maps the configured level name to a slog level, defaulting to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ToCalibration builds the immutable calibration used by the engine.
func (c CalibrationConfig) ToCalibration() costbenefit.Calibration {
	qaly := make(costbenefit.QalyTable, len(c.Qaly))
	for k, v := range c.Qaly {
		qaly[costbenefit.QalyTag(k)] = v
	}
	return costbenefit.Calibration{
		Version:       c.Version,
		Coefficients:  scoring.NewCoefficientSet(c.Coefficients),
		CostOfLiving:  scoring.NewCostOfLivingTable(c.CostOfLiving),
		FixedCosts:    append(costbenefit.Schedule(nil), c.FixedCosts...),
		VariableCosts: append(costbenefit.Schedule(nil), c.VariableCosts...),
		Qaly:          qaly,
		ValuePerQaly:  c.ValuePerQaly,
		CohortSize:    c.CohortSize,
		WTP:           append([]scoring.WTPEstimate(nil), c.WTP...),
	}
}

func defaultCalibration() CalibrationConfig {
	cal := costbenefit.DefaultCalibration()
	qaly := make(map[string]float64, len(cal.Qaly))
	for k, v := range cal.Qaly {
		qaly[string(k)] = v
	}
	return CalibrationConfig{
		Version:       cal.Version,
		Coefficients:  cal.Coefficients.Map(),
		CostOfLiving:  cal.CostOfLiving.Map(),
		FixedCosts:    cal.FixedCosts,
		VariableCosts: cal.VariableCosts,
		Qaly:          qaly,
		ValuePerQaly:  cal.ValuePerQaly,
		CohortSize:    cal.CohortSize,
		WTP:           cal.WTP,
	}
}

// Load reads defaults, then the optional yaml file at path, then LONELYLESS_*
// environment overrides. The resulting calibration must validate.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              8700,
			MetricsPort:       8701,
			RequestsPerMinute: 120,
		},
		Calibration: defaultCalibration(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Calibration.ToCalibration().Validate(); err != nil {
		return nil, fmt.Errorf("invalid calibration: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LONELYLESS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("LONELYLESS_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("LONELYLESS_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("LONELYLESS_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("LONELYLESS_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("LONELYLESS_COHORT_SIZE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Calibration.CohortSize = f
		}
	}
	if v := os.Getenv("LONELYLESS_VALUE_PER_QALY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Calibration.ValuePerQaly = f
		}
	}
	if v := os.Getenv("LONELYLESS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
