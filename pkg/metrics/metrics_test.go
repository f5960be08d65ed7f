package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSubmission(OutcomeAccepted)
		m.ObserveEmail("notification", nil)
		m.ObserveRequest("GET", "/api/health", "200", 0.01)
	})
}

func TestObserveEmail(t *testing.T) {
	m := New()
	m.ObserveEmail("notification", nil)
	m.ObserveEmail("notification", errors.New("boom"))
	m.ObserveEmail("notification", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Emails().WithLabelValues("notification", "sent")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Emails().WithLabelValues("notification", "error")))
}
