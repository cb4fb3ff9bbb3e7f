// Package registry is the config-time registration surface: it maps names to
// steps, decorators and profiles, and builds named pipelines from them,
// either programmatically or from a YAML declaration. Nothing here is part of
// the runtime contract; once a pipeline is composed the registry is out of
// the picture.
package registry

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/briar-go/briar/pkg/briar"
	"github.com/briar-go/briar/pkg/briar/layer"
	"github.com/briar-go/briar/pkg/briar/model"
)

var (
	ErrNameMustBeSet     = errors.New("name must be set")
	ErrAlreadyRegistered = errors.New("name is already registered")
	ErrUnknownStep       = errors.New("step is not registered")
	ErrUnknownDecorator  = errors.New("decorator is not registered")
	ErrUnknownProfile    = errors.New("profile is not registered")
)

// Registry holds named steps, decorators, profiles and the pipelines composed
// from them. Registration is a config-time concern; the zero ordering
// guarantee callers get at run time comes from the composed pipelines, not
// from the registry.
type Registry[S any] struct {
	mu         sync.RWMutex
	steps      map[string]model.Step[S]
	decorators map[string]model.Decorator[S]
	profiles   map[string]*briar.Profile[S]
	pipelines  map[string]*briar.Pipeline[S]
}

// New creates an empty registry.
func New[S any]() *Registry[S] {
	return &Registry[S]{
		steps:      make(map[string]model.Step[S]),
		decorators: make(map[string]model.Decorator[S]),
		profiles:   make(map[string]*briar.Profile[S]),
		pipelines:  make(map[string]*briar.Pipeline[S]),
	}
}

// RegisterStep makes a step referenceable by name.
func (r *Registry[S]) RegisterStep(name string, step model.Step[S]) error {
	if name == "" {
		return ErrNameMustBeSet
	}
	if step == nil {
		return briar.ErrStepMustBeSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.steps[name]; ok {
		return errors.Wrapf(ErrAlreadyRegistered, "step %q", name)
	}
	r.steps[name] = step

	return nil
}

// RegisterDecorator makes a decorator referenceable by name.
func (r *Registry[S]) RegisterDecorator(name string, dec model.Decorator[S]) error {
	if name == "" {
		return ErrNameMustBeSet
	}
	if dec == nil {
		return briar.ErrDecoratorMustBeSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.decorators[name]; ok {
		return errors.Wrapf(ErrAlreadyRegistered, "decorator %q", name)
	}
	r.decorators[name] = dec

	return nil
}

// RegisterProfile makes a profile referenceable by name.
func (r *Registry[S]) RegisterProfile(name string, profile *briar.Profile[S]) error {
	if name == "" {
		return ErrNameMustBeSet
	}
	if profile == nil {
		return briar.ErrProfileMustBeSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[name]; ok {
		return errors.Wrapf(ErrAlreadyRegistered, "profile %q", name)
	}
	r.profiles[name] = profile

	return nil
}

// RegisterPipeline composes the named steps under the named profile and
// stores the result.
func (r *Registry[S]) RegisterPipeline(name, profileName string, stepNames ...string) error {
	if name == "" {
		return ErrNameMustBeSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.composePipeline(name, profileName, stepRefs(stepNames))
}

// Pipeline returns a composed pipeline by name.
func (r *Registry[S]) Pipeline(name string) (*briar.Pipeline[S], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pipe, ok := r.pipelines[name]

	return pipe, ok
}

// Pipelines returns the names of all composed pipelines.
func (r *Registry[S]) Pipelines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.pipelines))
	for name := range r.pipelines {
		names = append(names, name)
	}

	return names
}

// composePipeline expects r.mu to be held.
func (r *Registry[S]) composePipeline(name, profileName string, refs []stepRef) error {
	if _, ok := r.pipelines[name]; ok {
		return errors.Wrapf(ErrAlreadyRegistered, "pipeline %q", name)
	}

	profile, ok := r.profiles[profileName]
	if !ok {
		return errors.Wrapf(ErrUnknownProfile, "%q", profileName)
	}

	steps := make([]model.Step[S], 0, len(refs))
	for _, ref := range refs {
		step, ok := r.steps[ref.Name]
		if !ok {
			return errors.Wrapf(ErrUnknownStep, "%q", ref.Name)
		}
		steps = append(steps, registeredStep[S]{step: step, name: ref.Name, layers: refTags(ref, step)})
	}

	pipe, err := briar.Compose(profile, steps...)
	if err != nil {
		return errors.Wrapf(err, "unable to compose pipeline %q", name)
	}
	r.pipelines[name] = pipe

	return nil
}

// registeredStep carries the registry name into the composed plan and lets a
// declaration override the step's own layer tagging.
type registeredStep[S any] struct {
	step   model.Step[S]
	name   string
	layers layer.Tags
}

func (s registeredStep[S]) Run(state S) model.Result[S] {
	return s.step.Run(state)
}

func (s registeredStep[S]) Layers() layer.Tags {
	return s.layers
}

func (s registeredStep[S]) Name() string {
	return s.name
}
