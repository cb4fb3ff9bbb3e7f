// Package measure collects timing metrics for composed pipelines. The
// middleware package feeds it; the drawer package can overlay it on a
// rendered plan.
package measure

import (
	"sync"
	"time"
)

// DefaultMeasure is the in-memory Measure implementation. Safe for concurrent
// use so instrumented pipelines can be invoked from multiple goroutines.
type DefaultMeasure struct {
	mu    sync.Mutex
	steps map[string]Metric
	total time.Duration
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		steps: make(map[string]Metric),
	}
}

// AddMetric registers and returns the metric for name, reusing an existing
// one so repeated composition against the same measure accumulates.
func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.steps[name]; ok {
		return mt
	}

	mt := &DefaultMetric{}
	m.steps[name] = mt

	return mt
}

func (m *DefaultMeasure) Metric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.steps[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make(map[string]Metric, len(m.steps))
	for name, mt := range m.steps {
		all[name] = mt
	}

	return all
}

func (m *DefaultMeasure) SetTotalDuration(elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = elapsed
}

func (m *DefaultMeasure) TotalDuration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.total
}

var _ Measure = (*DefaultMeasure)(nil)

// DefaultMetric is the in-memory Metric implementation.
type DefaultMetric struct {
	mu      sync.Mutex
	elapsed time.Duration
	total   int64
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	mt.total++
	mt.elapsed += elapsed
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	if mt.total == 0 {
		return 0
	}

	return round(time.Duration(float64(mt.elapsed) / float64(mt.total)))
}

func (mt *DefaultMetric) Count() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.total
}

var _ Metric = (*DefaultMetric)(nil)

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}
