package briar

import "github.com/pkg/errors"

var (
	ErrProfileMustBeSet    = errors.New("profile must be set")
	ErrStepMustBeSet       = errors.New("step must be set")
	ErrDecoratorMustBeSet  = errors.New("decorator must be set")
	ErrActiveWithoutLayers = errors.New("active layers require a layer declaration")
)
