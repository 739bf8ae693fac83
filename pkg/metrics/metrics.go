package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors exported by countrydb.
// Collectors are registered on the Registerer passed to New, so tests can
// use a private registry instead of the global one.
type Metrics struct {
	// QueriesTotal counts query invocations, labeled by query name.
	QueriesTotal *prometheus.CounterVec

	// QueryDuration measures query latency. Queries are in-memory scans over a
	// few hundred records, so buckets start in the microsecond range.
	QueryDuration *prometheus.HistogramVec

	// RecordsLoaded tracks the size of the most recently loaded dataset.
	RecordsLoaded prometheus.Gauge

	// LoadsTotal counts dataset loads, labeled by outcome ("ok" or "error").
	LoadsTotal *prometheus.CounterVec
}

// New creates and registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "countrydb_queries_total",
				Help: "Total number of queries executed",
			},
			[]string{"query"},
		),
		QueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "countrydb_query_duration_seconds",
				Help:    "Duration of queries in seconds",
				Buckets: []float64{0.000001, 0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
			},
			[]string{"query"},
		),
		RecordsLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "countrydb_records_loaded",
				Help: "Number of country records in the loaded dataset",
			},
		),
		LoadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "countrydb_loads_total",
				Help: "Total number of dataset loads by status",
			},
			[]string{"status"},
		),
	}
}

// ObserveQuery records one invocation of the named query. The returned
// function stops the timer and must be called once the query completes.
// A nil *Metrics is valid and records nothing.
func (m *Metrics) ObserveQuery(name string) func() {
	if m == nil {
		return func() {}
	}
	m.QueriesTotal.WithLabelValues(name).Inc()
	start := time.Now()
	return func() {
		m.QueryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

// ObserveLoad records the outcome of a dataset load.
func (m *Metrics) ObserveLoad(records int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.LoadsTotal.WithLabelValues("error").Inc()
		return
	}
	m.LoadsTotal.WithLabelValues("ok").Inc()
	m.RecordsLoaded.Set(float64(records))
}
