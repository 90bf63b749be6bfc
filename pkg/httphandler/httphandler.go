package httphandler

import (
	"errors"

	// Package
	answer "github.com/mutablelogic/go-answer"
	relay "github.com/mutablelogic/go-answer/pkg/relay"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterHandlers registers the answer endpoints on the router, relative
// to the router prefix
func RegisterHandlers(relay *relay.Relay, router *httprouter.Router) error {
	var result error

	// Convenience function to register a path item and accumulate any errors
	register := func(path string, item httprequest.PathItem) {
		result = errors.Join(result, router.RegisterPath(path, nil, item))
	}

	// Register handlers
	register(AnswerHandler(relay))

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts an answer.Err to an httpresponse.Err, preserving the
// original error message. Unknown error codes map to 500.
func httpErr(err error) error {
	var answerErr answer.Err
	if !errors.As(err, &answerErr) {
		return err
	}
	switch answerErr {
	case answer.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case answer.ErrBadParameter:
		return httpresponse.ErrBadRequest.With(err)
	case answer.ErrNotImplemented:
		return httpresponse.ErrNotImplemented.With(err)
	case answer.ErrUnavailable:
		return httpresponse.ErrServiceUnavailable.With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
