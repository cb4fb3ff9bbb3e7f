package model

import "github.com/briar-go/briar/pkg/briar/layer"

// Step is one unit of pipeline domain logic. A step either succeeds with the
// next state or fails; it never panics or mutates shared state.
//
// Steps come in two equivalent forms: a named capability is any caller type
// implementing this interface, reusable across pipelines; an anonymous step
// pairs a raw function with an option set via Inline and is only usable where
// declared. The composer does not distinguish between them.
type Step[S any] interface {
	// Run executes the step against the current state.
	Run(state S) Result[S]
	// Layers returns the layer declaration controlling whether the step is
	// part of a composed pipeline.
	Layers() layer.Tags
}

type inlineStep[S any] struct {
	fn   Continuation[S]
	opts unitOptions
}

// Inline pairs a raw step function with an option set. Without options the
// step is anonymous and always enabled.
func Inline[S any](fn func(S) Result[S], opts ...Option) Step[S] {
	return inlineStep[S]{fn: fn, opts: newUnitOptions(opts)}
}

func (s inlineStep[S]) Run(state S) Result[S] {
	return s.fn(state)
}

func (s inlineStep[S]) Layers() layer.Tags {
	return s.opts.layers
}

func (s inlineStep[S]) Name() string {
	return s.opts.name
}
