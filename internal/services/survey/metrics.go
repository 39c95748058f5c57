package survey

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeAgree    = "agree"
	outcomeDisagree = "disagree"
	outcomeFailed   = "failed"
)

// Metrics are the survey counters.
type Metrics struct {
	sessions *prometheus.CounterVec
	trials   prometheus.Histogram
}

// NewMetrics creates the survey counters and registers them with reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sessions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quatex_survey_sessions_total",
				Help: "Number of surveyed sessions by outcome",
			},
			[]string{"outcome"},
		),
		trials: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "quatex_survey_trials",
				Help:    "Number of trials per survey",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.sessions, m.trials)
	}
	return m
}

func (m *Metrics) observe(outcome string) {
	m.sessions.WithLabelValues(outcome).Inc()
}
