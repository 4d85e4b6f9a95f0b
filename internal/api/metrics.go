package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Evaluations    *prometheus.CounterVec
	Rejections     *prometheus.CounterVec
	Uptake         prometheus.Histogram
	SavedScenarios prometheus.Counter
	Sessions       prometheus.Gauge
}

// NewMetrics registers the service collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lonelyless",
			Name:      "evaluations_total",
			Help:      "Scenario evaluations by QALY scenario.",
		}, []string{"qaly_scenario"}),
		Rejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lonelyless",
			Name:      "scenario_rejections_total",
			Help:      "Scenarios rejected by validation, by reason.",
		}, []string{"reason"}),
		Uptake: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lonelyless",
			Name:      "predicted_uptake",
			Help:      "Predicted uptake probability of evaluated scenarios.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 9),
		}),
		SavedScenarios: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lonelyless",
			Name:      "saved_scenarios_total",
			Help:      "Scenarios appended to session repositories.",
		}),
		Sessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "lonelyless",
			Name:      "live_sessions",
			Help:      "Sessions currently holding a repository.",
		}),
	}
}

func (m *Metrics) observeRejection(reason string) {
	if m == nil {
		return
	}
	m.Rejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) observeEvaluation(tag string, p float64) {
	if m == nil {
		return
	}
	m.Evaluations.WithLabelValues(tag).Inc()
	m.Uptake.Observe(p)
}
