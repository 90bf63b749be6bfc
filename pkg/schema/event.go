package schema

import (
	"encoding/json"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Event is the record sent to the caller for every relayed fragment, and once
// more with IsComplete set when the stream ends. IsThought is nil when thought
// separation is disabled, and the field is then omitted from the wire.
type Event struct {
	IsThought  *bool  `json:"is_thought,omitempty"`
	Content    string `json:"content"`
	IsComplete bool   `json:"is_complete"`
	Error      string `json:"error,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewContentEvent returns an event for a fragment. When thoughts is false the
// thought classification is dropped and the fragment is treated as answer text.
func NewContentEvent(fragment Fragment, thoughts bool) Event {
	event := Event{Content: fragment.Text}
	if thoughts {
		event.IsThought = boolPtr(fragment.Thought)
	}
	return event
}

// NewCompleteEvent returns the terminal event. A non-nil err is reported in
// the error field.
func NewCompleteEvent(thoughts bool, err error) Event {
	event := Event{IsComplete: true}
	if thoughts {
		event.IsThought = boolPtr(false)
	}
	if err != nil {
		event.Error = err.Error()
	}
	return event
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (e Event) String() string {
	data, err := json.Marshal(e)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func boolPtr(v bool) *bool {
	return &v
}
