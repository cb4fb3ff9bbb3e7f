package middleware

import (
	"go.uber.org/zap"

	"github.com/briar-go/briar/pkg/briar/model"
)

// Logging returns a decorator that logs the outcome of the unit it wraps:
// debug on success, warn on failure. As a per-step decorator it fires once
// per enabled step; as a pipeline decorator it fires once per invocation.
func Logging[S any](logger *zap.Logger, opts ...model.Option) model.Decorator[S] {
	return model.InlineDecorator[S](func(next model.Continuation[S]) model.Continuation[S] {
		return func(state S) model.Result[S] {
			res := next(state)
			if res.IsOk() {
				logger.Debug("unit succeeded")
			} else {
				logger.Warn("unit failed", zap.Error(res.Err()))
			}

			return res
		}
	}, opts...)
}
