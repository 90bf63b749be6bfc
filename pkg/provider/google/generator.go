package google

import (
	"context"
	"errors"
	"io"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	answer "github.com/mutablelogic/go-answer"
	opt "github.com/mutablelogic/go-answer/pkg/opt"
	schema "github.com/mutablelogic/go-answer/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	roleUser = "user"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stream sends the prompt as a single user turn and calls fn for each part
// of the first candidate, in the order the API streams them.
func (c *Client) Stream(ctx context.Context, prompt string, fn schema.FragmentFn, opts ...opt.Opt) error {
	if fn == nil {
		return answer.ErrBadParameter.With("stream callback is required")
	}

	// Apply options
	options, err := opt.Apply(opts...)
	if err != nil {
		return answer.ErrBadParameter.With(err)
	}
	model := c.model
	if options.Has(opt.ModelKey) {
		model = options.GetString(opt.ModelKey)
	}

	// Build request
	request, err := generateRequestFromOpts(prompt, options)
	if err != nil {
		return err
	}
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return err
	}

	// Each SSE event carries a complete geminiGenerateResponse, or an error
	var finishReason string
	callback := func(event client.TextStreamEvent) error {
		var chunk geminiGenerateResponse
		if err := event.Json(&chunk); err != nil {
			return err
		}
		if chunk.Error != nil {
			return errorFromGemini(chunk.Error)
		}
		if chunk.PromptFeedback != nil && chunk.PromptFeedback.BlockReason != "" {
			return answer.ErrRefusal.Withf("prompt blocked: %s", chunk.PromptFeedback.BlockReason)
		}
		if len(chunk.Candidates) == 0 || chunk.Candidates[0] == nil {
			return nil
		}
		if reason := chunk.Candidates[0].FinishReason; reason != "" {
			finishReason = reason
		}
		if chunk.Candidates[0].Content == nil {
			return nil
		}
		for _, part := range chunk.Candidates[0].Content.Parts {
			if part == nil {
				continue
			}
			if err := fn(schema.Fragment{Text: part.Text, Thought: part.Thought}); err != nil {
				return err
			}
		}
		return nil
	}

	// Execute with SSE streaming (Gemini uses ?alt=sse)
	var discard geminiGenerateResponse
	if err := c.DoWithContext(ctx, payload, &discard,
		client.OptPath("models", model+":streamGenerateContent"),
		client.OptQuery(map[string][]string{"alt": {"sse"}}),
		client.OptTextStreamCallback(callback),
	); err != nil {
		// io.EOF signals normal end of stream
		if !errors.Is(err, io.EOF) {
			return err
		}
	}

	// Report candidates which did not finish normally
	return errorFromFinishReason(finishReason)
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// generateRequestFromOpts builds a geminiGenerateRequest from the prompt and applied options
func generateRequestFromOpts(prompt string, options *opt.Options) (*geminiGenerateRequest, error) {
	if prompt == "" {
		return nil, answer.ErrBadParameter.With("prompt is required")
	}
	request := &geminiGenerateRequest{
		Contents: []*geminiContent{geminiNewTextContent(roleUser, prompt)},
	}

	// Thought visibility
	if options.GetBool(opt.ThinkingKey) {
		request.GenerationConfig.ThinkingConfig = &geminiThinkingConfig{
			IncludeThoughts: true,
		}
	}

	// Tool activations
	for _, tool := range options.GetTools() {
		t, err := geminiToolFromSchema(tool)
		if err != nil {
			return nil, err
		}
		request.Tools = append(request.Tools, t)
	}

	return request, nil
}

// geminiToolFromSchema maps a tool identifier to its Gemini activation
func geminiToolFromSchema(tool schema.Tool) (*geminiTool, error) {
	switch tool {
	case schema.ToolSearch:
		return &geminiTool{GoogleSearch: &geminiGoogleSearch{}}, nil
	default:
		return nil, answer.ErrNotImplemented.Withf("tool %q", tool)
	}
}

// errorFromGemini maps an API error to an error code. Overload and quota
// errors are reported as unavailable.
func errorFromGemini(e *geminiError) error {
	switch e.Code {
	case http.StatusBadRequest:
		return answer.ErrBadParameter.Withf("%s (%s)", e.Message, e.Status)
	case http.StatusNotFound:
		return answer.ErrNotFound.Withf("%s (%s)", e.Message, e.Status)
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return answer.ErrUnavailable.Withf("%s (%s)", e.Message, e.Status)
	default:
		return answer.ErrInternalServerError.Withf("%d %s (%s)", e.Code, e.Message, e.Status)
	}
}

// errorFromFinishReason returns nil when the candidate finished normally
func errorFromFinishReason(reason string) error {
	switch reason {
	case geminiFinishReasonMaxTokens:
		return answer.ErrMaxTokens
	case geminiFinishReasonSafety, geminiFinishReasonImageSafety, geminiFinishReasonRecitation,
		geminiFinishReasonBlocklist, geminiFinishReasonProhibitedContent, geminiFinishReasonSPII:
		return answer.ErrRefusal.Withf("finish reason %s", reason)
	default:
		return nil
	}
}

// GenerateRequest builds a generate request from options without sending it.
// Useful for testing and debugging.
func GenerateRequest(prompt string, opts ...opt.Opt) (any, error) {
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	return generateRequestFromOpts(prompt, options)
}
