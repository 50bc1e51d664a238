package selector

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all prometheus metrics for the selector
type Metrics struct {
	// Pool growth
	ElementsAdded *prometheus.CounterVec

	// Selection outcomes
	Selections    *prometheus.CounterVec
	Unsatisfied   *prometheus.CounterVec
	SelectionSize prometheus.Histogram

	// Adjusting to an exact count
	TrimmedElements  *prometheus.CounterVec
	ToppedUpElements *prometheus.CounterVec
}

// NewMetrics creates and registers all selector metrics
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ElementsAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stratify_elements_added_total",
				Help: "Total number of elements added to each category",
			},
			[]string{"category"},
		),

		Selections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stratify_selections_total",
				Help: "Total number of successful selections",
			},
			[]string{"mode"},
		),

		Unsatisfied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stratify_unsatisfied_total",
				Help: "Total number of selections refused because the distribution was unsatisfied",
			},
			[]string{"reason"},
		),

		SelectionSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "stratify_selection_size",
				Help:    "Number of elements returned per selection",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),

		TrimmedElements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stratify_trimmed_elements_total",
				Help: "Total number of elements trimmed from each category to meet an exact count",
			},
			[]string{"category"},
		),

		ToppedUpElements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stratify_topped_up_elements_total",
				Help: "Total number of elements added to each category after rounding fell short of an exact count",
			},
			[]string{"category"},
		),
	}

	reg.MustRegister(
		m.ElementsAdded,
		m.Selections,
		m.Unsatisfied,
		m.SelectionSize,
		m.TrimmedElements,
		m.ToppedUpElements,
	)

	return m
}

// TrackAdd records an element added to category
func (m *Metrics) TrackAdd(category string) {
	m.ElementsAdded.WithLabelValues(category).Inc()
}

// TrackSelection records a successful selection of size elements
func (m *Metrics) TrackSelection(mode string, size int) {
	m.Selections.WithLabelValues(mode).Inc()
	m.SelectionSize.Observe(float64(size))
}

// TrackUnsatisfied records a refused selection. Errors that aren't an
// *UnsatisfiedError are counted with the "unknown" reason.
func (m *Metrics) TrackUnsatisfied(err error) {
	reason := "unknown"

	var ue *UnsatisfiedError
	if errors.As(err, &ue) {
		reason = string(ue.Reason)
	}

	m.Unsatisfied.WithLabelValues(reason).Inc()
}

// TrackTrim records one element trimmed from category
func (m *Metrics) TrackTrim(category string) {
	m.TrimmedElements.WithLabelValues(category).Inc()
}

// TrackTopUp records one element added to category to reach the target
func (m *Metrics) TrackTopUp(category string) {
	m.ToppedUpElements.WithLabelValues(category).Inc()
}
