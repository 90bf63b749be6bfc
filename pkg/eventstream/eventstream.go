/*
eventstream writes server-sent events which carry only a data field,
flushing each event to the client as it is written.
*/
package eventstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Writer frames values as "data: <json>\n\n" on a response
type Writer struct {
	sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
	err     error
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ContentType = "text/event-stream"
)

var (
	ErrNotFlusher = errors.New("response writer does not support flushing")
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New writes the event stream headers and a 200 status, and returns a writer
// for the events. It returns an error if the response cannot be flushed.
func New(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrNotFlusher
	}

	header := w.Header()
	header.Set("Content-Type", ContentType)
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &Writer{w: w, flusher: flusher}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Write sends one event. After a write fails, every later write returns
// the same error.
func (s *Writer) Write(v any) error {
	s.Lock()
	defer s.Unlock()
	if s.err != nil {
		return s.err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		s.err = err
		return err
	}
	s.flusher.Flush()
	return nil
}
