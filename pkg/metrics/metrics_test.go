package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveQuery(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveQuery("MaximumPopulation")()
	m.ObserveQuery("MaximumPopulation")()
	m.ObserveQuery("CountryNames")()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("MaximumPopulation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("CountryNames")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.QueryDuration))
}

func TestObserveLoad(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveLoad(12, nil)
	m.ObserveLoad(0, errors.New("boom"))

	assert.Equal(t, 12.0, testutil.ToFloat64(m.RecordsLoaded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoadsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoadsTotal.WithLabelValues("error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveQuery("anything")()
		m.ObserveLoad(3, nil)
	})
}

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	// A second registration of the same names must be rejected.
	require.Panics(t, func() { New(reg) })
}
