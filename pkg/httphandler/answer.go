package httphandler

import (
	"net/http"

	// Packages
	answer "github.com/mutablelogic/go-answer"
	eventstream "github.com/mutablelogic/go-answer/pkg/eventstream"
	relay "github.com/mutablelogic/go-answer/pkg/relay"
	schema "github.com/mutablelogic/go-answer/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: answer_question, relative to the router prefix. Methods other than
// POST return 405.
func AnswerHandler(relay *relay.Relay) (string, httprequest.PathItem) {
	return "answer_question", httprequest.NewPathItem(
		"Answer",
		"Answer a question, streaming thought and answer fragments as server-sent events",
		"answer",
	).Post(func(w http.ResponseWriter, r *http.Request) {
		// Decode and validate before anything is streamed, so that a bad
		// request gets an error status rather than an event stream
		var req schema.AnswerRequest
		if err := httprequest.Read(r, &req); err != nil {
			_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
			return
		} else if err := req.Validate(); err != nil {
			_ = httpresponse.Error(w, httpErr(answer.ErrBadParameter.With(err)))
			return
		}
		answerStream(w, r, relay, req)
	}, "Answer a question")
}

// answerStream sends the answer as a text/event-stream. Failures after the
// stream has started are reported in the terminal event by the relay.
func answerStream(w http.ResponseWriter, r *http.Request, relay *relay.Relay, req schema.AnswerRequest) {
	stream, err := eventstream.New(w)
	if err != nil {
		_ = httpresponse.Error(w, httpresponse.ErrInternalError.With(err))
		return
	}
	_ = relay.Answer(r.Context(), req, stream)
}
