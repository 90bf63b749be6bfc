package opt

import (
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-answer/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ModelKey    = "model"
	ThinkingKey = "thinking"
	ToolKey     = "tool"
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithModel overrides the model used for a single call
func WithModel(name string) Opt {
	if name == "" {
		return Error(fmt.Errorf("model name is required"))
	}
	return SetString(ModelKey, name)
}

// WithThinking asks the model to surface thought fragments alongside the answer
func WithThinking() Opt {
	return SetBool(ThinkingKey, true)
}

// WithTool enables a tool during generation. Enabling the same tool
// more than once has no further effect.
func WithTool(tools ...schema.Tool) Opt {
	return func(o *Options) error {
		for _, tool := range tools {
			if !tool.Valid() {
				return fmt.Errorf("unsupported tool %q", tool)
			}
			if !o.hasValue(ToolKey, string(tool)) {
				o.Values.Add(ToolKey, string(tool))
			}
		}
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// GETTERS

// GetTools returns the enabled tools, in the order they were first enabled
func (o *Options) GetTools() []schema.Tool {
	values := o.GetStringArray(ToolKey)
	if len(values) == 0 {
		return nil
	}
	result := make([]schema.Tool, 0, len(values))
	for _, v := range values {
		result = append(result, schema.Tool(v))
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (o *Options) hasValue(key, value string) bool {
	for _, v := range o.Values[key] {
		if v == value {
			return true
		}
	}
	return false
}
