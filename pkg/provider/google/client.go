/*
google implements a streaming client for the Google Gemini REST API.
https://ai.google.dev/gemini-api/docs
*/
package google

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	answer "github.com/mutablelogic/go-answer"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	model string
}

var _ answer.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint     = "https://generativelanguage.googleapis.com/v1beta"
	defaultName  = "gemini"
	DefaultModel = "gemini-2.5-flash"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new Google Gemini API client with the given API key. Options
// are applied after the default endpoint, so OptEndpoint can replace it.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{client.OptEndpoint(endPoint)}, opts...)
	opts = append(opts, client.OptHeader("x-goog-api-key", apiKey))
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{Client: c, model: DefaultModel}, nil
	}
}

// NewWithModel creates a client which generates with the named model by default
func NewWithModel(apiKey, model string, opts ...client.ClientOpt) (*Client, error) {
	if model == "" {
		return nil, answer.ErrBadParameter.With("model is required")
	}
	c, err := New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	c.model = model
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return defaultName
}

// Model returns the default model name
func (c *Client) Model() string {
	return c.model
}
