package middleware

import (
	"github.com/pkg/errors"

	"github.com/briar-go/briar/pkg/briar/model"
)

// Recover returns a decorator that converts a panic in the wrapped unit into
// a failed result. A composed pipeline has no exception channel of its own;
// this is the boundary for callers whose step bodies may panic.
func Recover[S any](opts ...model.Option) model.Decorator[S] {
	return model.InlineDecorator[S](func(next model.Continuation[S]) model.Continuation[S] {
		return func(state S) (res model.Result[S]) {
			defer func() {
				if rec := recover(); rec != nil {
					res = model.Fail[S](errors.Errorf("recovered: %v", rec))
				}
			}()

			return next(state)
		}
	}, opts...)
}
