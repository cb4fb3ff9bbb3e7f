package briar_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briar-go/briar/pkg/briar"
	"github.com/briar-go/briar/pkg/briar/layer"
	"github.com/briar-go/briar/pkg/briar/model"
)

func TestNewProfileDefault(t *testing.T) {
	t.Parallel()

	profile, err := briar.NewProfile[int]()
	require.NoError(t, err)

	assert.Nil(t, profile.Layers())
	assert.True(t, profile.IsEnabled(layer.Wildcard()))
	assert.False(t, profile.IsEnabled(layer.Of("test")))
}

func TestNewProfileLayers(t *testing.T) {
	t.Parallel()

	profile, err := briar.NewProfile[int](
		briar.WithLayers[int]("dev", "test", "prod"),
		briar.WithActive[int]("test", "dev"),
	)
	require.NoError(t, err)

	assert.Equal(t, []layer.Tag{"dev", "test", "prod"}, profile.Layers())
	assert.True(t, profile.IsEnabled(layer.Of("dev")))
	assert.True(t, profile.IsEnabled(layer.Of("test", "prod")))
	assert.False(t, profile.IsEnabled(layer.Of("prod")))
}

func TestNewProfileActiveWithoutLayers(t *testing.T) {
	t.Parallel()

	_, err := briar.NewProfile[int](briar.WithActive[int]("test"))
	assert.ErrorIs(t, err, briar.ErrActiveWithoutLayers)
}

func TestNewProfileUnknownActiveTag(t *testing.T) {
	t.Parallel()

	_, err := briar.NewProfile[int](
		briar.WithLayers[int]("dev"),
		briar.WithActive[int]("prod"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, layer.ErrUnknownTag)
}

func TestNewProfileDuplicateLayer(t *testing.T) {
	t.Parallel()

	_, err := briar.NewProfile[int](briar.WithLayers[int]("dev", "dev"))
	assert.ErrorIs(t, err, layer.ErrDuplicateTag)
}

func TestNewProfileNilDecorator(t *testing.T) {
	t.Parallel()

	_, err := briar.NewProfile[int](briar.WithStepDecorators[int](nil))
	assert.ErrorIs(t, err, briar.ErrDecoratorMustBeSet)

	_, err = briar.NewProfile[int](briar.WithPipelineDecorators[int](nil))
	assert.ErrorIs(t, err, briar.ErrDecoratorMustBeSet)
}

func TestNewProfileFiltersDecorators(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	counting := func(tags ...layer.Tag) model.Decorator[int] {
		opts := []model.Option{}
		if len(tags) > 0 {
			opts = append(opts, model.WithLayers(tags...))
		}
		return model.InlineDecorator(func(next model.Continuation[int]) model.Continuation[int] {
			return func(state int) model.Result[int] {
				calls.Add(1)
				return next(state)
			}
		}, opts...)
	}

	profile, err := briar.NewProfile[int](
		briar.WithLayers[int]("test", "prod"),
		briar.WithActive[int]("test"),
		briar.WithStepDecorators[int](counting("prod"), counting("test")),
	)
	require.NoError(t, err)

	pipe, err := briar.Compose(profile, model.Inline(func(state int) model.Result[int] {
		return model.Ok(state)
	}))
	require.NoError(t, err)

	// the prod-tagged decorator was dropped at profile build time
	assert.Len(t, pipe.Plan().StepDecorators, 1)

	res := pipe.Run(0)
	require.NoError(t, res.Err())
	assert.Equal(t, int64(1), calls.Load())
}

func TestProfileSharedAcrossPipelines(t *testing.T) {
	t.Parallel()

	profile, err := briar.NewProfile[int](
		briar.WithLayers[int]("test", "prod"),
		briar.WithActive[int]("test"),
	)
	require.NoError(t, err)

	incr := model.Inline(func(state int) model.Result[int] {
		return model.Ok(state + 1)
	})
	prodOnly := model.Inline(func(state int) model.Result[int] {
		return model.Ok(state + 100)
	}, model.WithLayers("prod"))

	first, err := briar.Compose(profile, incr, incr)
	require.NoError(t, err)
	second, err := briar.Compose(profile, incr, prodOnly)
	require.NoError(t, err)

	res := first.Run(0)
	require.NoError(t, res.Err())
	assert.Equal(t, 2, res.State())

	res = second.Run(0)
	require.NoError(t, res.Err())
	assert.Equal(t, 1, res.State())
}
