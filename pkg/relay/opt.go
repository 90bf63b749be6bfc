package relay

import (
	"log/slog"

	// Packages
	answer "github.com/mutablelogic/go-answer"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring a relay
type Opt func(*Relay) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithThoughts sets whether thought fragments are requested from the model
// and classified on the wire. When false, every fragment is answer text and
// events carry no thought field.
func WithThoughts(v bool) Opt {
	return func(r *Relay) error {
		r.thoughts = v
		return nil
	}
}

// WithLogger sets the logger for fragment diagnostics and stream errors
func WithLogger(logger *slog.Logger) Opt {
	return func(r *Relay) error {
		if logger == nil {
			return answer.ErrBadParameter.With("logger is required")
		}
		r.logger = logger
		return nil
	}
}

// WithTracer sets the tracer used to open a span for each relayed answer
func WithTracer(tracer trace.Tracer) Opt {
	return func(r *Relay) error {
		if tracer == nil {
			return answer.ErrBadParameter.With("tracer is required")
		}
		r.tracer = tracer
		return nil
	}
}
