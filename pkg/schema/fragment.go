package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Fragment is one incremental piece of model output
type Fragment struct {
	Text    string `json:"text,omitempty"`
	Thought bool   `json:"thought,omitempty"` // Intermediate reasoning rather than answer text
}

// FragmentFn receives fragments in the order the model produces them
type FragmentFn func(Fragment) error
