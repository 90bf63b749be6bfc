package httphandler_test

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"

	// Packages
	httphandler "github.com/mutablelogic/go-answer/pkg/httphandler"
	opt "github.com/mutablelogic/go-answer/pkg/opt"
	relay "github.com/mutablelogic/go-answer/pkg/relay"
	schema "github.com/mutablelogic/go-answer/pkg/schema"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
)

///////////////////////////////////////////////////////////////////////////////
// MOCK GENERATOR

type mockGenerator struct {
	sync.Mutex
	fragments []schema.Fragment
	err       error
	stream    func(context.Context, schema.FragmentFn) error
	options   []*opt.Options
}

func (g *mockGenerator) Name() string { return "mock" }

func (g *mockGenerator) Stream(ctx context.Context, prompt string, fn schema.FragmentFn, opts ...opt.Opt) error {
	options, err := opt.Apply(opts...)
	if err != nil {
		return err
	}
	g.Lock()
	g.options = append(g.options, options)
	g.Unlock()

	if g.stream != nil {
		return g.stream(ctx, fn)
	}
	for _, f := range g.fragments {
		if err := fn(f); err != nil {
			return err
		}
	}
	return g.err
}

func (g *mockGenerator) calls() int {
	g.Lock()
	defer g.Unlock()
	return len(g.options)
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// serveMux registers the handlers on a router, and returns the mux which the
// http server would serve
func serveMux(t *testing.T, g *mockGenerator, opts ...relay.Opt) *http.ServeMux {
	t.Helper()
	mux, _ := newRouter(t, g, "", "*", opts...)
	return mux
}

func newRouter(t *testing.T, g *mockGenerator, prefix, origin string, opts ...relay.Opt) (*http.ServeMux, *httprouter.Router) {
	t.Helper()
	r, err := relay.New(g, opts...)
	if err != nil {
		t.Fatal(err)
	}
	mux := http.NewServeMux()
	router, err := httprouter.NewRouter(context.Background(), mux, prefix, origin, "test", "v0.0.0", httphandler.Cors(origin))
	if err != nil {
		t.Fatal(err)
	}
	if err := httphandler.RegisterHandlers(r, router); err != nil {
		t.Fatal(err)
	}
	return mux, router
}

// events splits an event stream body into the JSON payload of each event
func events(t *testing.T, body string) []string {
	t.Helper()
	var result []string
	for _, frame := range strings.Split(body, "\n\n") {
		if frame == "" {
			continue
		}
		if !strings.HasPrefix(frame, "data: ") || strings.Contains(frame, "\n") {
			t.Fatalf("malformed event %q", frame)
		}
		result = append(result, strings.TrimPrefix(frame, "data: "))
	}
	if body != "" && !strings.HasSuffix(body, "\n\n") {
		t.Fatalf("stream does not end with a blank line: %q", body)
	}
	return result
}
