package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briar-go/briar/pkg/briar/model"
)

func TestOk(t *testing.T) {
	t.Parallel()

	res := model.Ok(42)
	assert.True(t, res.IsOk())
	assert.Equal(t, 42, res.State())
	require.NoError(t, res.Err())
}

func TestFail(t *testing.T) {
	t.Parallel()

	res := model.Fail[int](assert.AnError)
	assert.False(t, res.IsOk())
	assert.ErrorIs(t, res.Err(), assert.AnError)
}

func TestBindOk(t *testing.T) {
	t.Parallel()

	res := model.Bind(model.Ok(2), func(state int) model.Result[int] {
		return model.Ok(state * 3)
	})
	require.True(t, res.IsOk())
	assert.Equal(t, 6, res.State())
}

func TestBindFail(t *testing.T) {
	t.Parallel()

	invoked := false
	res := model.Bind(model.Fail[int](assert.AnError), func(state int) model.Result[int] {
		invoked = true
		return model.Ok(state)
	})
	assert.False(t, res.IsOk())
	assert.ErrorIs(t, res.Err(), assert.AnError)
	assert.False(t, invoked, "bind must never invoke the continuation on a failed result")
}
