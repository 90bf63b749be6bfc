package eventstream_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	eventstream "github.com/mutablelogic/go-answer/pkg/eventstream"
	assert "github.com/stretchr/testify/assert"
)

func Test_eventstream_001(t *testing.T) {
	// Headers and status are written before any event
	assert := assert.New(t)
	w := httptest.NewRecorder()
	stream, err := eventstream.New(w)
	assert.NoError(err)
	assert.NotNil(stream)
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal("no-cache", w.Header().Get("Cache-Control"))
	assert.Equal("keep-alive", w.Header().Get("Connection"))
	assert.True(w.Flushed)
	assert.Empty(w.Body.String())
}

func Test_eventstream_002(t *testing.T) {
	// Each value is a single data line followed by a blank line
	assert := assert.New(t)
	w := httptest.NewRecorder()
	stream, err := eventstream.New(w)
	assert.NoError(err)
	assert.NoError(stream.Write(map[string]any{"content": "a"}))
	assert.NoError(stream.Write(map[string]any{"content": "b\nc"}))
	assert.Equal("data: {\"content\":\"a\"}\n\ndata: {\"content\":\"b\\nc\"}\n\n", w.Body.String())
}

func Test_eventstream_003(t *testing.T) {
	// Values which cannot be encoded are rejected without writing
	assert := assert.New(t)
	w := httptest.NewRecorder()
	stream, err := eventstream.New(w)
	assert.NoError(err)
	assert.Error(stream.Write(make(chan int)))
	assert.Empty(w.Body.String())
}

type noFlush struct {
	http.ResponseWriter
}

func Test_eventstream_004(t *testing.T) {
	// A writer which cannot flush is rejected
	assert := assert.New(t)
	_, err := eventstream.New(noFlush{httptest.NewRecorder()})
	assert.ErrorIs(err, eventstream.ErrNotFlusher)
}

type brokenWriter struct {
	*httptest.ResponseRecorder
	writes int
}

func (w *brokenWriter) Write(data []byte) (int, error) {
	w.writes++
	return 0, errors.New("connection reset")
}

func Test_eventstream_005(t *testing.T) {
	// A failed write is sticky
	assert := assert.New(t)
	w := &brokenWriter{ResponseRecorder: httptest.NewRecorder()}
	stream, err := eventstream.New(w)
	assert.NoError(err)
	assert.EqualError(stream.Write("a"), "connection reset")
	assert.EqualError(stream.Write("b"), "connection reset")
	assert.Equal(1, w.writes)
}
