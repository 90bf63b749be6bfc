package answer

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-answer/pkg/opt"
	schema "github.com/mutablelogic/go-answer/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Generator is the model capability: given prompt text and options, it produces
// a lazy sequence of fragments, delivered in order to the callback. Returning an
// error from the callback stops the sequence and Stream returns that error.
type Generator interface {
	// Return the provider name
	Name() string

	// Stream generates a response to the prompt, calling fn for each fragment
	Stream(ctx context.Context, prompt string, fn schema.FragmentFn, opts ...opt.Opt) error
}
