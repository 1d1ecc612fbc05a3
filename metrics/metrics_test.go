package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Register(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	m.ObserveAppend("order", 0.002, nil)
	m.IncTrailsPurged("order")

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.ElementsMatch(t, []string{MetricLogEntriesTotal, MetricLogAppendDuration, MetricLogTrailsPurgedTotal}, names)

	// A second registration of the same collectors fails
	assert.Error(t, m.Register(reg))
}

func TestMetrics_ObserveAppend(t *testing.T) {
	m := NewMetrics()

	m.ObserveAppend("order", 0.01, nil)
	m.ObserveAppend("order", 0.01, nil)
	m.ObserveAppend("order", 0.01, errors.New("locked"))
	m.ObserveAppend("teammember", 0.01, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.entriesTotal.WithLabelValues("order", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.entriesTotal.WithLabelValues("order", StatusFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.entriesTotal.WithLabelValues("teammember", StatusSuccess)))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAppend("order", 0.1, nil)
		m.IncTrailsPurged("order")
	})
}
