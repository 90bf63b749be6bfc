package google

///////////////////////////////////////////////////////////////////////////////
// TYPES - Gemini REST API wire format
//
// Reference: https://ai.google.dev/api/generate-content
//            https://ai.google.dev/api/caching (Content, Part, Tool types)

///////////////////////////////////////////////////////////////////////////////
// CONTENT & PARTS

// geminiContent is the multi-part content of a message turn
type geminiContent struct {
	Parts []*geminiPart `json:"parts"`
	Role  string        `json:"role,omitempty"`
}

// geminiPart is a single unit within a Content message. Only text parts are
// relayed; the thought flag marks intermediate reasoning.
type geminiPart struct {
	Thought          bool   `json:"thought,omitempty"`
	ThoughtSignature string `json:"thoughtSignature,omitempty"` // base64-encoded
	Text             string `json:"text,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GENERATE CONTENT - REQUEST

// geminiGenerateRequest is the request body for
// POST /v1beta/{model=models/*}:streamGenerateContent
type geminiGenerateRequest struct {
	Contents         []*geminiContent       `json:"contents"`
	Tools            []*geminiTool          `json:"tools,omitempty"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig,omitzero"`
}

// geminiGenerationConfig holds generation parameters
type geminiGenerationConfig struct {
	ThinkingConfig *geminiThinkingConfig `json:"thinkingConfig,omitempty"`
}

// geminiThinkingConfig controls the model's extended thinking/reasoning
type geminiThinkingConfig struct {
	IncludeThoughts bool `json:"includeThoughts,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// TOOLS

// geminiTool is a tool the model may use
type geminiTool struct {
	GoogleSearch *geminiGoogleSearch `json:"googleSearch,omitempty"`
}

// geminiGoogleSearch enables Google Search grounding
type geminiGoogleSearch struct{}

///////////////////////////////////////////////////////////////////////////////
// GENERATE CONTENT - RESPONSE

// geminiGenerateResponse is each chunk in the streamGenerateContent stream
type geminiGenerateResponse struct {
	Candidates     []*geminiCandidate    `json:"candidates,omitempty"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback,omitempty"`
	Error          *geminiError          `json:"error,omitempty"`
	ModelVersion   string                `json:"modelVersion,omitempty"`
	ResponseID     string                `json:"responseId,omitempty"`
}

// geminiCandidate is a single response candidate
type geminiCandidate struct {
	Content      *geminiContent `json:"content,omitempty"`
	FinishReason string         `json:"finishReason,omitempty"`
	Index        int            `json:"index,omitempty"`
}

// geminiError is the error body the API returns, either as the whole
// response or as a chunk within the stream
type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// geminiPromptFeedback reports whether the prompt was blocked
type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// Finish reasons which end a candidate early
const (
	geminiFinishReasonMaxTokens         = "MAX_TOKENS"
	geminiFinishReasonSafety            = "SAFETY"
	geminiFinishReasonImageSafety       = "IMAGE_SAFETY"
	geminiFinishReasonRecitation        = "RECITATION"
	geminiFinishReasonBlocklist         = "BLOCKLIST"
	geminiFinishReasonProhibitedContent = "PROHIBITED_CONTENT"
	geminiFinishReasonSPII              = "SPII"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// geminiNewTextContent creates a Content with a single text Part
func geminiNewTextContent(role, text string) *geminiContent {
	return &geminiContent{
		Role: role,
		Parts: []*geminiPart{
			{Text: text},
		},
	}
}
