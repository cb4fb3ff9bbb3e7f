// Package model provides the data structures shared by the briar packages:
// the Result sum type threaded through a pipeline, the Step and Decorator
// contracts, and the inline adapters that pair a raw function with an option
// set.
package model
