package model

// Result is the outcome of one pipeline unit: either Ok carrying the next
// state, or Fail carrying an error. The zero value is a failure with a nil
// error; always use the constructors.
type Result[S any] struct {
	state S
	err   error
	ok    bool
}

// Ok returns a successful result carrying state.
func Ok[S any](state S) Result[S] {
	return Result[S]{state: state, ok: true}
}

// Fail returns a failed result carrying err. The error is opaque to the
// composer; it is only threaded through to the caller.
func Fail[S any](err error) Result[S] {
	return Result[S]{err: err}
}

// State returns the carried state. Only meaningful when IsOk is true.
func (r Result[S]) State() S {
	return r.state
}

// Err returns the carried error, nil on success.
func (r Result[S]) Err() error {
	return r.err
}

// IsOk reports whether the result is a success.
func (r Result[S]) IsOk() bool {
	return r.ok
}

// Continuation is the shape of everything the composer folds: a step's run
// function, a decorated step, or the whole remaining chain.
type Continuation[S any] func(S) Result[S]

// Bind applies next to the state carried by r when r is a success. A failed
// result is returned unchanged and next is never invoked; this is the sole
// short-circuit mechanism in a composed pipeline.
func Bind[S any](r Result[S], next Continuation[S]) Result[S] {
	if !r.ok {
		return r
	}

	return next(r.state)
}
