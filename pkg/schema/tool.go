package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool identifies an auxiliary capability the model may use while answering.
// The set of tools is closed: decoding any other identifier fails.
type Tool string

// Tools is a selection of tools. Duplicates are harmless and order is irrelevant.
type Tools []Tool

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ToolSearch Tool = "search" // Web search grounding
)

// All tools, in declaration order
var toolValues = []Tool{ToolSearch}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ToolValues returns every supported tool identifier
func ToolValues() []Tool {
	return append([]Tool(nil), toolValues...)
}

// ParseTool returns the tool for an identifier, or an error if it is not supported
func ParseTool(v string) (Tool, error) {
	tool := Tool(strings.TrimSpace(v))
	if !tool.Valid() {
		return "", fmt.Errorf("unsupported tool %q (supported: %s)", v, toolList())
	}
	return tool, nil
}

// Valid returns true if the tool is a member of the supported set
func (t Tool) Valid() bool {
	for _, v := range toolValues {
		if t == v {
			return true
		}
	}
	return false
}

// Unique returns the tools with duplicates removed
func (t Tools) Unique() Tools {
	if len(t) == 0 {
		return nil
	}
	result := make(Tools, 0, len(t))
	seen := make(map[Tool]struct{}, len(t))
	for _, tool := range t {
		if _, exists := seen[tool]; exists {
			continue
		}
		seen[tool] = struct{}{}
		result = append(result, tool)
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// JSON

func (t *Tool) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("tool must be a string: %w", err)
	}
	tool, err := ParseTool(v)
	if err != nil {
		return err
	}
	*t = tool
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func toolList() string {
	names := make([]string, len(toolValues))
	for i, v := range toolValues {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
