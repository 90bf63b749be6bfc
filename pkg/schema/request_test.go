package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-answer/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_request_001(t *testing.T) {
	// Question only, tools omitted
	assert := assert.New(t)
	var req schema.AnswerRequest
	assert.NoError(json.Unmarshal([]byte(`{"question":"2+2?"}`), &req))
	assert.Equal("2+2?", req.Question)
	assert.Empty(req.Tools)
	assert.NoError(req.Validate())
}

func Test_request_002(t *testing.T) {
	// Null and empty tools are both "no tools"
	assert := assert.New(t)
	for _, body := range []string{`{"question":"q","tools":null}`, `{"question":"q","tools":[]}`} {
		var req schema.AnswerRequest
		assert.NoError(json.Unmarshal([]byte(body), &req))
		assert.Empty(req.Tools.Unique())
		assert.NoError(req.Validate())
	}
}

func Test_request_003(t *testing.T) {
	// Missing or blank question fails validation
	assert := assert.New(t)
	for _, body := range []string{`{}`, `{"question":""}`, `{"question":"   "}`} {
		var req schema.AnswerRequest
		assert.NoError(json.Unmarshal([]byte(body), &req))
		assert.Error(req.Validate(), body)
	}
}

func Test_request_004(t *testing.T) {
	// Wrong types fail decoding
	assert := assert.New(t)
	for _, body := range []string{`{"question":42}`, `{"question":"q","tools":"search"}`, `{"question":"q","tools":["web"]}`} {
		var req schema.AnswerRequest
		assert.Error(json.Unmarshal([]byte(body), &req), body)
	}
}

func Test_request_005(t *testing.T) {
	// Tools constructed in code are validated too
	assert := assert.New(t)
	req := schema.AnswerRequest{Question: "q", Tools: schema.Tools{"maps"}}
	assert.Error(req.Validate())
}
