package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records selection outcomes as Prometheus collectors.
type Metrics struct {
	selections *prometheus.CounterVec
	excluded   prometheus.Counter
	candidates prometheus.Histogram
	score      prometheus.Histogram
	distance   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		selections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_selections_total",
				Help: "Total number of selected activations",
			},
			[]string{"activator", "target"},
		),
		excluded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbor_activations_excluded_total",
			Help: "Activations dropped from ranking because they had no target state",
		}),
		candidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arbor_selection_candidates",
			Help:    "Number of candidate activations per selection",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		score: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arbor_selection_score",
			Help:    "Adjusted score of the winning activation",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
		distance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arbor_selection_distance",
			Help:    "Step-up distance of the winning activation",
			Buckets: []float64{0, 1, 2, 3, 5, 8},
		}),
	}

	for _, c := range []prometheus.Collector{m.selections, m.excluded, m.candidates, m.score, m.distance} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

// Hooks returns the lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSelect: func(_ context.Context, ev *domain.SelectionEvent) {
			m.selections.WithLabelValues(ev.Winner.Activation.Activator, ev.Winner.Activation.Target).Inc()
			m.excluded.Add(float64(ev.Excluded))
			m.candidates.Observe(float64(ev.Candidates))
			m.score.Observe(ev.Winner.Score)
			m.distance.Observe(float64(ev.Winner.Distance))
		},
	}
}
