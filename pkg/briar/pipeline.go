package briar

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/briar-go/briar/pkg/briar/model"
)

// Pipeline is the composer's output: a pure state -> Result function closed
// over a fixed, layer-filtered set of steps and decorators. It is immutable
// after composition and safe to invoke concurrently, provided the caller's
// step and decorator bodies are.
type Pipeline[S any] struct {
	run  model.Continuation[S]
	plan Plan
	id   uuid.UUID
}

// Plan describes what a pipeline was composed from, for inspection and
// rendering. It carries every supplied step, including the layer-disabled
// ones that contribute nothing at run time.
type Plan struct {
	Steps              []PlanStep
	StepDecorators     []string
	PipelineDecorators []string
}

// PlanStep is one supplied step in composition order.
type PlanStep struct {
	Name    string
	Enabled bool
}

// Compose filters steps against the profile's active layers and folds the
// survivors into a single pipeline.
//
// The fold runs right to left. Each kept step's own run function is wrapped
// by the profile's per-step decorators (first decorator outermost), then
// chained onto the accumulated continuation through Bind, so a failed result
// skips everything after it. The pipeline decorators wrap the finished chain
// exactly once. With no kept steps the pipeline is the identity success
// continuation wrapped by the pipeline decorators.
func Compose[S any](profile *Profile[S], steps ...model.Step[S]) (*Pipeline[S], error) {
	if profile == nil {
		return nil, ErrProfileMustBeSet
	}

	plan := Plan{
		Steps:              make([]PlanStep, 0, len(steps)),
		StepDecorators:     unitNames(profile.perStep),
		PipelineDecorators: unitNames(profile.whole),
	}

	enabled := make([]model.Step[S], 0, len(steps))
	for idx, step := range steps {
		if step == nil {
			return nil, errors.Wrapf(ErrStepMustBeSet, "position %d", idx)
		}
		keep := profile.IsEnabled(step.Layers())
		plan.Steps = append(plan.Steps, PlanStep{Name: stepName(idx, step), Enabled: keep})
		if keep {
			enabled = append(enabled, step)
		}
	}

	acc := terminal[S]
	for idx := len(enabled) - 1; idx >= 0; idx-- {
		wrapped := decorate(profile.perStep, enabled[idx].Run)
		next := acc
		acc = func(state S) model.Result[S] {
			return model.Bind(wrapped(state), next)
		}
	}

	return &Pipeline[S]{
		run:  decorate(profile.whole, acc),
		plan: plan,
		id:   uuid.New(),
	}, nil
}

// Run invokes the pipeline against an initial state.
func (p *Pipeline[S]) Run(state S) model.Result[S] {
	return p.run(state)
}

// ID returns the identifier assigned at composition.
func (p *Pipeline[S]) ID() uuid.UUID {
	return p.id
}

// Plan returns a copy of the composition plan.
func (p *Pipeline[S]) Plan() Plan {
	return Plan{
		Steps:              append([]PlanStep(nil), p.plan.Steps...),
		StepDecorators:     append([]string(nil), p.plan.StepDecorators...),
		PipelineDecorators: append([]string(nil), p.plan.PipelineDecorators...),
	}
}

// terminal is the identity success continuation representing "no more steps".
func terminal[S any](state S) model.Result[S] {
	return model.Ok(state)
}

// decorate folds the decorator list around fn so that the first decorator in
// the list is the outermost call and fn sits at the centre.
func decorate[S any](decorators []model.Decorator[S], fn model.Continuation[S]) model.Continuation[S] {
	next := fn
	for idx := len(decorators) - 1; idx >= 0; idx-- {
		next = decorators[idx].Wrap(next)
	}

	return next
}

func stepName[S any](idx int, step model.Step[S]) string {
	if named, ok := step.(model.Named); ok && named.Name() != "" {
		return named.Name()
	}

	return fmt.Sprintf("step-%d", idx+1)
}

func unitNames[S any](decorators []model.Decorator[S]) []string {
	names := make([]string, 0, len(decorators))
	for idx, dec := range decorators {
		name := fmt.Sprintf("decorator-%d", idx+1)
		if named, ok := dec.(model.Named); ok && named.Name() != "" {
			name = named.Name()
		}
		names = append(names, name)
	}

	return names
}
