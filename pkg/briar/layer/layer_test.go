package layer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briar-go/briar/pkg/briar/layer"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	cat, err := layer.NewCatalog("dev", "test", "prod")
	require.NoError(t, err)
	assert.Equal(t, []layer.Tag{"dev", "test", "prod"}, cat.Tags())
}

func TestNewCatalogDuplicate(t *testing.T) {
	t.Parallel()

	_, err := layer.NewCatalog("dev", "test", "dev")
	require.Error(t, err)
	assert.ErrorIs(t, err, layer.ErrDuplicateTag)
}

func TestNewCatalogTooManyTags(t *testing.T) {
	t.Parallel()

	tags := make([]layer.Tag, 65)
	for i := range tags {
		tags[i] = layer.Tag(rune('a' + i))
	}

	_, err := layer.NewCatalog(tags...)
	assert.ErrorIs(t, err, layer.ErrTooManyTags)
}

func TestEnableUnknownTag(t *testing.T) {
	t.Parallel()

	cat, err := layer.NewCatalog("dev", "test")
	require.NoError(t, err)

	_, err = cat.Enable(layer.NewMask(), "prod")
	assert.ErrorIs(t, err, layer.ErrUnknownTag)
}

func TestIsEnabled(t *testing.T) {
	t.Parallel()

	cat, err := layer.NewCatalog("dev", "test", "prod")
	require.NoError(t, err)

	mask, err := cat.Enable(layer.NewMask(), "test")
	require.NoError(t, err)

	tcs := map[string]struct {
		tags layer.Tags
		want bool
	}{
		"wildcard":               {tags: layer.Wildcard(), want: true},
		"empty set":              {tags: layer.Of(), want: true},
		"active tag":             {tags: layer.Of("test"), want: true},
		"inactive tag":           {tags: layer.Of("prod"), want: false},
		"one of two active":      {tags: layer.Of("test", "dev"), want: true},
		"none of two active":     {tags: layer.Of("prod", "dev"), want: false},
		"tag unknown to catalog": {tags: layer.Of("staging"), want: false},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, cat.IsEnabled(mask, tc.tags))
		})
	}
}

func TestIsEnabledEmptyMask(t *testing.T) {
	t.Parallel()

	cat, err := layer.NewCatalog("dev", "test")
	require.NoError(t, err)

	assert.True(t, cat.IsEnabled(layer.NewMask(), layer.Wildcard()))
	assert.False(t, cat.IsEnabled(layer.NewMask(), layer.Of("dev")))
}

func TestIsEnabledNilCatalog(t *testing.T) {
	t.Parallel()

	var cat *layer.Catalog
	assert.True(t, cat.IsEnabled(layer.NewMask(), layer.Wildcard()))
	assert.False(t, cat.IsEnabled(layer.NewMask(), layer.Of("dev")))
}
