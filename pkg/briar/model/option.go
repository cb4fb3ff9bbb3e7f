package model

import "github.com/briar-go/briar/pkg/briar/layer"

// Option configures an inline step or decorator.
type Option func(*unitOptions)

type unitOptions struct {
	name   string
	layers layer.Tags
}

func newUnitOptions(opts []Option) unitOptions {
	cfg := unitOptions{layers: layer.Wildcard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLayers restricts the unit to the given layers. Without it the unit is
// always enabled.
func WithLayers(tags ...layer.Tag) Option {
	return func(o *unitOptions) {
		o.layers = layer.Of(tags...)
	}
}

// WithName names the unit for inspection output. Units are anonymous by
// default.
func WithName(name string) Option {
	return func(o *unitOptions) {
		o.name = name
	}
}

// Named is implemented by steps and decorators that expose a display name.
// Inline units built with WithName implement it; named capabilities may too.
type Named interface {
	Name() string
}
