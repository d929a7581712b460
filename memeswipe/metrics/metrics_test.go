package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopWhenDisabled(t *testing.T) {
	m := New(false, prometheus.NewRegistry())
	_, ok := m.(noopRecorder)
	assert.True(t, ok, "should return the no-op recorder when disabled")

	m.IncRequestsTotal("/api/votes", 200)
	m.ObserveRequestDuration("/api/votes", time.Millisecond)
	m.AddExperience(10)
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(true, reg)

	m.IncRequestsTotal("/api/votes", 201)
	m.IncRequestsTotal("/api/votes", 409)
	m.AddExperience(15)
	m.AddExperience(-3)
	m.AddDiamonds("quest", 40)
	m.AddLevelUps(2)
	m.IncQuestsCompleted("vote")

	rec := m.(*prometheusRecorder)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.requestsTotal.WithLabelValues("/api/votes", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.requestsTotal.WithLabelValues("/api/votes", "4xx")))
	assert.Equal(t, 15.0, testutil.ToFloat64(rec.experienceTotal))
	assert.Equal(t, 40.0, testutil.ToFloat64(rec.diamondsTotal.WithLabelValues("quest")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.levelUpsTotal))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestHTTPStatusBucket(t *testing.T) {
	tests := map[int]string{101: "1xx", 200: "2xx", 302: "3xx", 404: "4xx", 503: "5xx"}
	for code, want := range tests {
		assert.Equal(t, want, httpStatusBucket(code))
	}
}
