package layer

import "github.com/pkg/errors"

var (
	ErrTooManyTags  = errors.New("catalog cannot hold more than 64 tags")
	ErrDuplicateTag = errors.New("tag is declared more than once")
	ErrUnknownTag   = errors.New("tag is not declared in the catalog")
)

// Tag is a symbolic layer label, e.g. "dev", "test" or "prod".
type Tag string

// Tags is the layer declaration carried by a step or a decorator. It is
// either the wildcard, which is enabled regardless of the active mask, or an
// explicit set of tags.
type Tags struct {
	tags     []Tag
	wildcard bool
}

// Wildcard returns the declaration that is always enabled.
func Wildcard() Tags {
	return Tags{wildcard: true}
}

// Of returns an explicit declaration holding the given tags.
func Of(tags ...Tag) Tags {
	return Tags{tags: append([]Tag(nil), tags...)}
}

// IsWildcard reports whether the declaration is always enabled. An empty
// explicit declaration behaves like the wildcard.
func (t Tags) IsWildcard() bool {
	return t.wildcard || len(t.tags) == 0
}

// List returns a copy of the declared tags.
func (t Tags) List() []Tag {
	return append([]Tag(nil), t.tags...)
}

// Mask is an opaque set of active layers. Callers obtain one from NewMask and
// only ever pass it back to the catalog that populated it.
type Mask uint64

// NewMask returns a mask with no active layers.
func NewMask() Mask {
	return 0
}

// Catalog maps declared tags to bit positions. The mapping is fixed at
// construction and never exposed; declaration order only matters to the
// catalog itself.
type Catalog struct {
	positions map[Tag]int
	order     []Tag
}

// NewCatalog declares the full set of tags a profile can use.
func NewCatalog(tags ...Tag) (*Catalog, error) {
	if len(tags) > 64 {
		return nil, ErrTooManyTags
	}

	cat := &Catalog{
		positions: make(map[Tag]int, len(tags)),
		order:     make([]Tag, 0, len(tags)),
	}

	for _, tag := range tags {
		if _, ok := cat.positions[tag]; ok {
			return nil, errors.Wrapf(ErrDuplicateTag, "%q", tag)
		}
		cat.positions[tag] = len(cat.order)
		cat.order = append(cat.order, tag)
	}

	return cat, nil
}

// Tags returns the declared tags in declaration order.
func (c *Catalog) Tags() []Tag {
	return append([]Tag(nil), c.order...)
}

// Enable returns a copy of mask with the given tag active.
func (c *Catalog) Enable(mask Mask, tag Tag) (Mask, error) {
	pos, ok := c.positions[tag]
	if !ok {
		return mask, errors.Wrapf(ErrUnknownTag, "%q", tag)
	}

	return mask | 1<<pos, nil
}

// IsEnabled reports whether a unit declaring the given tags is active under
// mask. The wildcard is always enabled. An explicit declaration is enabled
// iff at least one of its tags is active; tags unknown to the catalog never
// match.
func (c *Catalog) IsEnabled(mask Mask, tags Tags) bool {
	if tags.IsWildcard() {
		return true
	}
	if c == nil {
		return false
	}

	for _, tag := range tags.tags {
		pos, ok := c.positions[tag]
		if !ok {
			continue
		}
		if mask&(1<<pos) != 0 {
			return true
		}
	}

	return false
}
