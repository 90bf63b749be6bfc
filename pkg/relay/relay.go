/*
relay streams a model's answer to a question as a sequence of events.

For each question the relay calls the generator once, forwards every
non-empty fragment as a content event in the order it was produced, and
then sends exactly one terminal event. If the generator fails part way
through, the terminal event carries the error.
*/
package relay

import (
	"context"
	"errors"
	"log/slog"

	// Packages
	uuid "github.com/google/uuid"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	answer "github.com/mutablelogic/go-answer"
	opt "github.com/mutablelogic/go-answer/pkg/opt"
	schema "github.com/mutablelogic/go-answer/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Relay is safe for concurrent use; it holds no per-request state
type Relay struct {
	generator answer.Generator
	thoughts  bool
	logger    *slog.Logger
	tracer    trace.Tracer
}

// Sink receives events in order. An error stops the relay.
type Sink interface {
	Write(any) error
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	tracerName = "github.com/mutablelogic/go-answer/pkg/relay"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a relay for the generator. Thought separation is enabled
// unless WithThoughts(false) is given.
func New(generator answer.Generator, opts ...Opt) (*Relay, error) {
	if generator == nil {
		return nil, answer.ErrBadParameter.With("generator is required")
	}
	r := &Relay{
		generator: generator,
		thoughts:  true,
		logger:    slog.Default(),
		tracer:    noop.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Thoughts returns true if fragments are classified as thought or answer
func (r *Relay) Thoughts() bool {
	return r.thoughts
}

// Opts returns the model call options for a request
func (r *Relay) Opts(req schema.AnswerRequest) []opt.Opt {
	var opts []opt.Opt
	if r.thoughts {
		opts = append(opts, opt.WithThinking())
	}
	if tools := req.Tools.Unique(); len(tools) > 0 {
		opts = append(opts, opt.WithTool(tools...))
	}
	return opts
}

// Answer relays the answer to a request into the sink. It returns nil when the
// terminal event was written for a successful answer, the generator error when
// the terminal event reports a failure, or the sink error when the caller can
// no longer receive events. Cancelling ctx aborts the generator.
func (r *Relay) Answer(ctx context.Context, req schema.AnswerRequest, sink Sink) (err error) {
	if err := req.Validate(); err != nil {
		return answer.ErrBadParameter.With(err)
	}
	id := uuid.NewString()
	logger := r.logger.With("request", id)

	// Otel span
	ctx, endSpan := otel.StartSpan(r.tracer, ctx, "Answer",
		attribute.String("request", id),
		attribute.Int("tools", len(req.Tools.Unique())),
		attribute.Bool("thoughts", r.thoughts),
	)
	defer func() { endSpan(err) }()

	// The generator pushes fragments into an unbuffered channel, which keeps
	// them in order; the sink writer pulls them. A sink failure cancels the
	// shared context, which aborts the generator.
	var writeErr error
	fragments := make(chan schema.Fragment)
	wg, gctx := errgroup.WithContext(ctx)
	wg.Go(func() error {
		defer close(fragments)
		return r.generator.Stream(gctx, req.Question, func(fragment schema.Fragment) error {
			select {
			case fragments <- fragment:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		}, r.Opts(req)...)
	})
	wg.Go(func() error {
		for fragment := range fragments {
			if fragment.Text == "" {
				continue
			}
			event := schema.NewContentEvent(fragment, r.thoughts)
			logger.Debug("fragment", "thought", fragment.Thought, "content", fragment.Text)
			if err := sink.Write(event); err != nil {
				writeErr = err
				return err
			}
		}
		return nil
	})
	streamErr := wg.Wait()

	// The caller is gone, so there is nobody to send the terminal event to
	if writeErr != nil {
		logger.Warn("stream aborted", "error", writeErr)
		return writeErr
	}
	if streamErr != nil {
		if errors.Is(streamErr, context.Canceled) && ctx.Err() != nil {
			logger.Debug("stream cancelled", "error", streamErr)
		} else {
			logger.Error("stream failed", "error", streamErr)
		}
	}

	// Send the terminal event
	if err := sink.Write(schema.NewCompleteEvent(r.thoughts, streamErr)); err != nil {
		logger.Warn("terminal event not delivered", "error", err)
		return errors.Join(streamErr, err)
	}

	return streamErr
}
