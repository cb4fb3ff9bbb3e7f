package briar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briar-go/briar/pkg/briar/model"
)

func TestTerminal(t *testing.T) {
	t.Parallel()

	res := terminal(7)
	require.True(t, res.IsOk())
	assert.Equal(t, 7, res.State())
}

func TestDecorateEmpty(t *testing.T) {
	t.Parallel()

	fn := func(state int) model.Result[int] {
		return model.Ok(state + 1)
	}

	wrapped := decorate(nil, fn)
	res := wrapped(1)
	require.True(t, res.IsOk())
	assert.Equal(t, 2, res.State())
}

func TestDecorateFirstIsOutermost(t *testing.T) {
	t.Parallel()

	var order []string
	recording := func(name string) model.Decorator[int] {
		return model.InlineDecorator(func(next model.Continuation[int]) model.Continuation[int] {
			return func(state int) model.Result[int] {
				order = append(order, name+" before")
				res := next(state)
				order = append(order, name+" after")
				return res
			}
		})
	}

	wrapped := decorate([]model.Decorator[int]{recording("a"), recording("b")}, terminal[int])
	res := wrapped(0)
	require.True(t, res.IsOk())
	assert.Equal(t, []string{"a before", "b before", "b after", "a after"}, order)
}

func TestStepName(t *testing.T) {
	t.Parallel()

	anon := model.Inline(func(state int) model.Result[int] { return model.Ok(state) })
	named := model.Inline(func(state int) model.Result[int] { return model.Ok(state) }, model.WithName("incr"))

	assert.Equal(t, "step-1", stepName(0, anon))
	assert.Equal(t, "incr", stepName(4, named))
}
