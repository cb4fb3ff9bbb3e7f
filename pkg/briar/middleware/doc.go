// Package middleware ships stock decorators for composed pipelines: outcome
// logging, timing instrumentation and panic recovery. They are ordinary
// model.Decorator values and can be layer-tagged like any caller-supplied
// decorator.
package middleware
