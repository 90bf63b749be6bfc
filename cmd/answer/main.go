package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	google "github.com/mutablelogic/go-answer/pkg/provider/google"
	relay "github.com/mutablelogic/go-answer/pkg/relay"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration file
	Config kong.ConfigFlag `name:"config" help:"YAML file with flag defaults" optional:""`

	// HTTP server and client options
	HTTP struct {
		Addr    string        `name:"addr" env:"ANSWER_ADDR" default:"localhost:8000" help:"Server listen address"`
		Prefix  string        `name:"prefix" default:"" help:"Path prefix for the answer endpoint"`
		Origin  string        `name:"origin" default:"*" help:"Allowed cross-origin requests"`
		Timeout time.Duration `name:"timeout" default:"0" help:"Upstream request timeout, zero for none"`
	} `embed:"" prefix:"http."`

	// Gemini options
	Gemini `embed:""`

	// Private fields
	ctx      context.Context
	logger   *slog.Logger
	tracer   trace.Tracer
	execName string
}

type Gemini struct {
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Google Gemini API key"`
	Model        string `name:"model" env:"GEMINI_MODEL" default:"${model}" help:"Gemini model used to answer questions"`
	NoThoughts   bool   `name:"no-thoughts" help:"Do not request or separate model thoughts"`
}

type CLI struct {
	Globals
	ServerCommands
	AnswerCommands
	VersionCommands
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	tracerName = "github.com/mutablelogic/go-answer"
)

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cli.Globals.execName = execName()
	cmd := kong.Parse(&cli,
		kong.Name(cli.Globals.execName),
		kong.Description("Streaming question answering server"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Configuration(yamlConfig, "/etc/"+cli.Globals.execName+".yaml", "~/."+cli.Globals.execName+".yaml"),
		kong.Vars{
			"model": google.DefaultModel,
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Create a logger
	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	cli.Globals.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Tracer from the global provider, which is a no-op unless one is installed
	cli.Globals.tracer = otel.Tracer(tracerName)

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Relay returns a relay backed by a Gemini client, configured from the
// global flags
func (g *Globals) Relay() (*relay.Relay, error) {
	if g.GeminiAPIKey == "" {
		return nil, fmt.Errorf("no API key configured, set --gemini-api-key (or the GEMINI_API_KEY environment variable)")
	}

	// Make client opts
	clientOpts := []client.ClientOpt{}
	if g.Debug {
		clientOpts = append(clientOpts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		clientOpts = append(clientOpts, client.OptTracer(g.tracer))
	}
	if g.HTTP.Timeout != 0 {
		clientOpts = append(clientOpts, client.OptTimeout(g.HTTP.Timeout))
	}

	// Google client
	googleClient, err := google.NewWithModel(g.GeminiAPIKey, g.Model, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google client: %w", err)
	}

	// Relay
	opts := []relay.Opt{
		relay.WithThoughts(!g.NoThoughts),
	}
	if g.logger != nil {
		opts = append(opts, relay.WithLogger(g.logger))
	}
	if g.tracer != nil {
		opts = append(opts, relay.WithTracer(g.tracer))
	}
	return relay.New(googleClient, opts...)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
