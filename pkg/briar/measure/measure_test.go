package measure_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briar-go/briar/pkg/briar/measure"
)

func TestAddMetric(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	first := msr.AddMetric("add")
	second := msr.AddMetric("add")
	assert.Same(t, first, second, "re-adding a metric must reuse the existing one")

	assert.Nil(t, msr.Metric("missing"))
	assert.Len(t, msr.AllMetrics(), 1)
}

func TestMetricAVGDuration(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	metric := msr.AddMetric("add")

	assert.Equal(t, time.Duration(0), metric.AVGDuration())

	metric.AddDuration(10 * time.Microsecond)
	metric.AddDuration(20 * time.Microsecond)

	assert.Equal(t, int64(2), metric.Count())
	assert.Equal(t, 15*time.Microsecond, metric.AVGDuration())
}

func TestTotalDuration(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	require.Equal(t, time.Duration(0), msr.TotalDuration())

	msr.SetTotalDuration(3 * time.Millisecond)
	assert.Equal(t, 3*time.Millisecond, msr.TotalDuration())
}
