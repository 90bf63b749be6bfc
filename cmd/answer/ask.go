package main

import (
	"fmt"
	"io"
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-answer/pkg/schema"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type AnswerCommands struct {
	Ask AskCommand `cmd:"" name:"ask" help:"Stream the answer to a question." group:"ANSWER"`
}

type AskCommand struct {
	schema.AnswerRequest
}

// textSink writes events as plain text, dimming thoughts on a terminal
type textSink struct {
	w       io.Writer
	tty     bool
	thought bool
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AskCommand) Run(ctx *Globals) (err error) {
	relay, err := ctx.Relay()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "AskCommand")
	defer func() { endSpan(err) }()

	// Stream the answer
	return relay.Answer(parent, cmd.AnswerRequest, newTextSink(os.Stdout))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newTextSink(w io.Writer) *textSink {
	sink := &textSink{w: w}
	if f, ok := w.(*os.File); ok {
		sink.tty = term.IsTerminal(int(f.Fd()))
	}
	return sink
}

func (s *textSink) Write(v any) error {
	event, ok := v.(schema.Event)
	if !ok {
		return fmt.Errorf("unexpected event %T", v)
	}

	// Terminal event
	if event.IsComplete {
		_, err := fmt.Fprintln(s.w, s.reset())
		s.thought = false
		return err
	}

	// Separate thoughts from the answer when the classification changes
	thought := event.IsThought != nil && *event.IsThought
	prefix := ""
	if thought != s.thought {
		if thought {
			prefix = s.dim()
		} else {
			prefix = s.reset() + "\n\n"
		}
		s.thought = thought
	}
	_, err := fmt.Fprint(s.w, prefix+event.Content)
	return err
}

func (s *textSink) dim() string {
	if s.tty {
		return "\033[2m"
	}
	return ""
}

func (s *textSink) reset() string {
	if s.tty && s.thought {
		return "\033[0m"
	}
	return ""
}
