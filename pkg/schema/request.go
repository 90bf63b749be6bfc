package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// AnswerRequest is the body of an answer_question request
type AnswerRequest struct {
	Question string `json:"question" arg:"" help:"Question to answer"`
	Tools    Tools  `json:"tools,omitempty" name:"tool" help:"Tools the model may use (search)"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r AnswerRequest) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks the request has a question and only supported tools
func (r AnswerRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("question is required")
	}
	for _, tool := range r.Tools {
		if !tool.Valid() {
			return fmt.Errorf("unsupported tool %q", tool)
		}
	}
	return nil
}
