package middleware

import (
	"time"

	"github.com/briar-go/briar/pkg/briar/measure"
	"github.com/briar-go/briar/pkg/briar/model"
)

// Timing returns a decorator that accumulates the duration of every unit it
// wraps into the named metric. Used as a per-step decorator the metric
// aggregates across all enabled steps; use Timed to instrument one step under
// its own name.
func Timing[S any](msr measure.Measure, name string, opts ...model.Option) model.Decorator[S] {
	metric := msr.AddMetric(name)

	return model.InlineDecorator[S](func(next model.Continuation[S]) model.Continuation[S] {
		return func(state S) model.Result[S] {
			start := time.Now()
			res := next(state)
			metric.AddDuration(time.Since(start))

			return res
		}
	}, opts...)
}

// Total returns a pipeline decorator that records the duration of each whole
// invocation on the measure.
func Total[S any](msr measure.Measure, opts ...model.Option) model.Decorator[S] {
	return model.InlineDecorator[S](func(next model.Continuation[S]) model.Continuation[S] {
		return func(state S) model.Result[S] {
			start := time.Now()
			res := next(state)
			msr.SetTotalDuration(time.Since(start))

			return res
		}
	}, opts...)
}

type timedStep[S any] struct {
	model.Step[S]
	name   string
	metric measure.Metric
}

// Timed wraps a single step so its run durations accumulate under name. The
// wrapped step keeps its own layer declaration.
func Timed[S any](name string, msr measure.Measure, step model.Step[S]) model.Step[S] {
	return timedStep[S]{Step: step, name: name, metric: msr.AddMetric(name)}
}

func (s timedStep[S]) Run(state S) model.Result[S] {
	start := time.Now()
	res := s.Step.Run(state)
	s.metric.AddDuration(time.Since(start))

	return res
}

func (s timedStep[S]) Name() string {
	return s.name
}
