package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBehavior(t *testing.T) {
	t.Run("counters only increase", func(t *testing.T) {
		before := testutil.ToFloat64(JobsCreatedTotal)
		JobsCreatedTotal.Inc()
		after := testutil.ToFloat64(JobsCreatedTotal)

		assert.Greater(t, after, before, "counters should only increase")
	})

	t.Run("gauge tracks registry size", func(t *testing.T) {
		RegistrySize.Set(3)
		assert.Equal(t, 3.0, testutil.ToFloat64(RegistrySize))

		RegistrySize.Set(0)
		assert.Equal(t, 0.0, testutil.ToFloat64(RegistrySize))
	})

	t.Run("request counter labels", func(t *testing.T) {
		counter := HTTPRequestsTotal.WithLabelValues("GET", "/jobs", "200")
		counter.Inc()
		assert.GreaterOrEqual(t, testutil.ToFloat64(counter), 1.0)
	})

	t.Run("histograms track distributions", func(t *testing.T) {
		hist := HTTPRequestDuration.WithLabelValues("GET", "/jobs")
		hist.Observe(0.001)
		hist.Observe(0.010)

		count := testutil.CollectAndCount(HTTPRequestDuration)
		assert.Greater(t, count, 0, "histogram should collect metrics")
	})
}
