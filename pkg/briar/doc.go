// Package briar composes ordered lists of steps and cross-cutting decorators
// into synchronous pipelines.
//
// A Profile bundles a layer catalog, an active-layer mask and two decorator
// lists: per-step decorators re-applied around every step, and pipeline
// decorators applied exactly once around the whole chain. Profiles are built
// once, frozen, and safely shared by any number of pipelines.
//
// Compose filters the supplied steps against the profile's active layers and
// folds the survivors into a single Pipeline. Execution is fail-fast: the
// first failed Result is the pipeline's final result and no later step
// executes, though pipeline decorators still observe it. A composed Pipeline
// is a pure function of its input and may be invoked concurrently.
package briar
