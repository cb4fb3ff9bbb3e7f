package briar

import (
	"github.com/pkg/errors"

	"github.com/briar-go/briar/pkg/briar/layer"
	"github.com/briar-go/briar/pkg/briar/model"
)

// Profile bundles the layer policy and the decorator lists shared by a family
// of pipelines. It is frozen by NewProfile: layer-disabled decorators are
// dropped at build time, so a profile only ever carries decorators that will
// run. Steps are filtered later, at composition time, because steps are
// supplied per pipeline.
type Profile[S any] struct {
	catalog *layer.Catalog
	mask    layer.Mask
	perStep []model.Decorator[S]
	whole   []model.Decorator[S]
}

// ProfileOption configures a profile under construction.
type ProfileOption[S any] func(*profileConfig[S])

type profileConfig[S any] struct {
	layers  []layer.Tag
	active  []layer.Tag
	perStep []model.Decorator[S]
	whole   []model.Decorator[S]
}

// WithLayers declares the tag catalog available to the profile.
func WithLayers[S any](tags ...layer.Tag) ProfileOption[S] {
	return func(cfg *profileConfig[S]) {
		cfg.layers = append(cfg.layers, tags...)
	}
}

// WithActive marks the given declared tags as active.
func WithActive[S any](tags ...layer.Tag) ProfileOption[S] {
	return func(cfg *profileConfig[S]) {
		cfg.active = append(cfg.active, tags...)
	}
}

// WithStepDecorators appends decorators re-applied around every step of a
// composed pipeline. The first decorator is the outermost wrapper.
func WithStepDecorators[S any](decorators ...model.Decorator[S]) ProfileOption[S] {
	return func(cfg *profileConfig[S]) {
		cfg.perStep = append(cfg.perStep, decorators...)
	}
}

// WithPipelineDecorators appends decorators applied exactly once around the
// whole composed chain. The first decorator is the outermost wrapper.
func WithPipelineDecorators[S any](decorators ...model.Decorator[S]) ProfileOption[S] {
	return func(cfg *profileConfig[S]) {
		cfg.whole = append(cfg.whole, decorators...)
	}
}

// NewProfile builds a frozen profile. Without options it is the default empty
// profile: no layers, no decorators, every wildcard unit enabled.
func NewProfile[S any](opts ...ProfileOption[S]) (*Profile[S], error) {
	cfg := profileConfig[S]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	prof := &Profile[S]{mask: layer.NewMask()}

	if len(cfg.layers) > 0 {
		catalog, err := layer.NewCatalog(cfg.layers...)
		if err != nil {
			return nil, errors.Wrap(err, "unable to build layer catalog")
		}
		prof.catalog = catalog
	}

	if len(cfg.active) > 0 {
		if prof.catalog == nil {
			return nil, ErrActiveWithoutLayers
		}
		for _, tag := range cfg.active {
			mask, err := prof.catalog.Enable(prof.mask, tag)
			if err != nil {
				return nil, errors.Wrap(err, "unable to activate layer")
			}
			prof.mask = mask
		}
	}

	var err error
	prof.perStep, err = filterDecorators(prof, cfg.perStep)
	if err != nil {
		return nil, errors.Wrap(err, "invalid step decorator")
	}
	prof.whole, err = filterDecorators(prof, cfg.whole)
	if err != nil {
		return nil, errors.Wrap(err, "invalid pipeline decorator")
	}

	return prof, nil
}

// IsEnabled reports whether a unit declaring tags is active under the
// profile's mask.
func (p *Profile[S]) IsEnabled(tags layer.Tags) bool {
	return p.catalog.IsEnabled(p.mask, tags)
}

// Layers returns the declared tags in declaration order, nil when the profile
// has no catalog.
func (p *Profile[S]) Layers() []layer.Tag {
	if p.catalog == nil {
		return nil
	}

	return p.catalog.Tags()
}

func filterDecorators[S any](prof *Profile[S], decorators []model.Decorator[S]) ([]model.Decorator[S], error) {
	kept := make([]model.Decorator[S], 0, len(decorators))
	for idx, dec := range decorators {
		if dec == nil {
			return nil, errors.Wrapf(ErrDecoratorMustBeSet, "position %d", idx)
		}
		if prof.IsEnabled(dec.Layers()) {
			kept = append(kept, dec)
		}
	}

	return kept, nil
}
