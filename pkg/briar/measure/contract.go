package measure

import "time"

// Measure aggregates timing metrics for a pipeline.
type Measure interface {
	AddMetric(name string) Metric
	Metric(name string) Metric
	AllMetrics() map[string]Metric
	SetTotalDuration(elapsed time.Duration)
	TotalDuration() time.Duration
}

// Metric accumulates durations for one unit.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	Count() int64
}
