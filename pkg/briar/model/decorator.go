package model

import "github.com/briar-go/briar/pkg/briar/layer"

// Decorator is one unit of cross-cutting logic wrapping a continuation. A
// decorator may call next and pass through or transform its result, call next
// with a modified state, or bypass next entirely and produce its own Result;
// in the latter case the wrapped unit never executes for that invocation.
//
// The same named/inline duality as Step applies: implement the interface for
// a reusable capability, or use InlineDecorator for a one-off.
type Decorator[S any] interface {
	// Wrap returns the decorated continuation.
	Wrap(next Continuation[S]) Continuation[S]
	// Layers returns the layer declaration controlling whether the decorator
	// is part of a profile.
	Layers() layer.Tags
}

type inlineDecorator[S any] struct {
	fn   func(next Continuation[S]) Continuation[S]
	opts unitOptions
}

// InlineDecorator pairs a raw decorator function with an option set. Without
// options the decorator is anonymous and always enabled.
func InlineDecorator[S any](fn func(next Continuation[S]) Continuation[S], opts ...Option) Decorator[S] {
	return inlineDecorator[S]{fn: fn, opts: newUnitOptions(opts)}
}

func (d inlineDecorator[S]) Wrap(next Continuation[S]) Continuation[S] {
	return d.fn(next)
}

func (d inlineDecorator[S]) Layers() layer.Tags {
	return d.opts.layers
}

func (d inlineDecorator[S]) Name() string {
	return d.opts.name
}
