package registry

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/briar-go/briar/pkg/briar"
	"github.com/briar-go/briar/pkg/briar/layer"
	"github.com/briar-go/briar/pkg/briar/model"
)

// fileConfig is the YAML declaration of profiles and named pipelines. Steps
// and decorators are referenced by registered name; register them in code
// before loading.
type fileConfig struct {
	Profiles  []profileDecl  `yaml:"profiles"`
	Pipelines []pipelineDecl `yaml:"pipelines"`
}

type profileDecl struct {
	Name               string   `yaml:"name"`
	Layers             []string `yaml:"layers"`
	Active             []string `yaml:"active"`
	StepDecorators     []string `yaml:"step_decorators"`
	PipelineDecorators []string `yaml:"pipeline_decorators"`
}

type pipelineDecl struct {
	Name    string    `yaml:"name"`
	Profile string    `yaml:"profile"`
	Steps   []stepRef `yaml:"steps"`
}

// stepRef is one step entry in a pipeline declaration: either a bare name or
// a mapping with a layer override.
type stepRef struct {
	Name   string   `yaml:"name"`
	Layers []string `yaml:"layers"`
}

func (s *stepRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&s.Name)
	}

	aux := struct {
		Name   string   `yaml:"name"`
		Layers []string `yaml:"layers"`
	}{}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	s.Name = aux.Name
	s.Layers = aux.Layers

	return nil
}

// refTags returns the layer declaration to compose the referenced step
// under: the override when the entry declares layers, the step's own
// otherwise.
func refTags[S any](ref stepRef, step model.Step[S]) layer.Tags {
	if len(ref.Layers) == 0 {
		return step.Layers()
	}

	return layer.Of(toTags(ref.Layers)...)
}

func stepRefs(names []string) []stepRef {
	refs := make([]stepRef, 0, len(names))
	for _, name := range names {
		refs = append(refs, stepRef{Name: name})
	}

	return refs
}

func toTags(names []string) []layer.Tag {
	tags := make([]layer.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, layer.Tag(name))
	}

	return tags
}

// LoadFile loads a YAML declaration from path.
func (r *Registry[S]) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "unable to read config file %s", path)
	}

	return r.LoadBytes(data)
}

// LoadBytes parses a YAML declaration and registers its profiles and
// pipelines. Unknown step, decorator or profile names reject the whole load;
// nothing is deferred to run time.
func (r *Registry[S]) LoadBytes(data []byte) error {
	cfg := fileConfig{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrap(err, "unable to parse config")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, decl := range cfg.Profiles {
		if decl.Name == "" {
			return ErrNameMustBeSet
		}
		if _, ok := r.profiles[decl.Name]; ok {
			return errors.Wrapf(ErrAlreadyRegistered, "profile %q", decl.Name)
		}
		profile, err := r.buildProfile(decl)
		if err != nil {
			return errors.Wrapf(err, "unable to build profile %q", decl.Name)
		}
		r.profiles[decl.Name] = profile
	}

	for _, decl := range cfg.Pipelines {
		if decl.Name == "" {
			return ErrNameMustBeSet
		}
		if err := r.composePipeline(decl.Name, decl.Profile, decl.Steps); err != nil {
			return err
		}
	}

	return nil
}

// buildProfile expects r.mu to be held.
func (r *Registry[S]) buildProfile(decl profileDecl) (*briar.Profile[S], error) {
	opts := []briar.ProfileOption[S]{}
	if len(decl.Layers) > 0 {
		opts = append(opts, briar.WithLayers[S](toTags(decl.Layers)...))
	}
	if len(decl.Active) > 0 {
		opts = append(opts, briar.WithActive[S](toTags(decl.Active)...))
	}

	perStep, err := r.resolveDecorators(decl.StepDecorators)
	if err != nil {
		return nil, err
	}
	if len(perStep) > 0 {
		opts = append(opts, briar.WithStepDecorators[S](perStep...))
	}

	whole, err := r.resolveDecorators(decl.PipelineDecorators)
	if err != nil {
		return nil, err
	}
	if len(whole) > 0 {
		opts = append(opts, briar.WithPipelineDecorators[S](whole...))
	}

	return briar.NewProfile[S](opts...)
}

func (r *Registry[S]) resolveDecorators(names []string) ([]model.Decorator[S], error) {
	decorators := make([]model.Decorator[S], 0, len(names))
	for _, name := range names {
		dec, ok := r.decorators[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownDecorator, "%q", name)
		}
		decorators = append(decorators, namedDecorator[S]{dec: dec, name: name})
	}

	return decorators, nil
}

// namedDecorator carries the registry name into the composed plan.
type namedDecorator[S any] struct {
	dec  model.Decorator[S]
	name string
}

func (d namedDecorator[S]) Wrap(next model.Continuation[S]) model.Continuation[S] {
	return d.dec.Wrap(next)
}

func (d namedDecorator[S]) Layers() layer.Tags {
	return d.dec.Layers()
}

func (d namedDecorator[S]) Name() string {
	return d.name
}
