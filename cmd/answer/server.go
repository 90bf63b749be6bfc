package main

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"

	// Packages
	httphandler "github.com/mutablelogic/go-answer/pkg/httphandler"
	relay "github.com/mutablelogic/go-answer/pkg/relay"
	version "github.com/mutablelogic/go-answer/pkg/version"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
)

type ServerCommands struct {
	// Commands
	RunServer RunServer `cmd:"" name:"run" help:"Run server." group:"SERVER"`
}

type RunServer struct {
	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

// Run creates the relay and http server, logs the startup banner, and
// blocks until context cancellation (e.g. SIGINT)
func (cmd *RunServer) Run(ctx *Globals) error {
	relay, err := ctx.Relay()
	if err != nil {
		return err
	}

	// Create the TLS config if TLS options are provided
	tlsConfig, err := cmd.TLSConfig()
	if err != nil {
		return err
	}

	// Create the server, which serves its own mux
	srv, err := httpserver.New(ctx.HTTP.Addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("httpserver: %w", err)
	}

	// Create the HTTP router on the server mux
	versionTag := version.Version()
	router, err := NewRouter(ctx, srv.Router(), relay, versionTag)
	if err != nil {
		return err
	}

	// Bind to the address before logging that the server started
	if err := srv.Listen(); err != nil {
		return err
	}

	// Run the server
	ctx.logger.InfoContext(ctx.ctx, "started", "name", ctx.execName, "version", versionTag, "addr", srv.Addr(), "prefix", router.Prefix(), "model", ctx.Model, "thoughts", relay.Thoughts())
	if err := srv.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	ctx.logger.InfoContext(ctx.ctx, "stopped", "name", ctx.execName, "version", versionTag)
	return nil
}

// NewRouter registers the answer handlers on mux under the configured prefix,
// with credentialed CORS and a JSON 404 for unmatched requests
func NewRouter(ctx *Globals, mux *http.ServeMux, relay *relay.Relay, versionTag string) (*httprouter.Router, error) {
	router, err := httprouter.NewRouter(ctx.ctx, mux, ctx.HTTP.Prefix, ctx.HTTP.Origin, "Answer Server", versionTag, httphandler.Cors(ctx.HTTP.Origin))
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	} else if err := httphandler.RegisterHandlers(relay, router); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if err := router.RegisterCatchAll("/", false); err != nil {
		return nil, fmt.Errorf("catchall: %w", err)
	}
	return router, nil
}

// TLSConfig returns nil when no certificate or key is given
func (cmd *RunServer) TLSConfig() (*tls.Config, error) {
	if cmd.TLS.CertFile == "" && cmd.TLS.KeyFile == "" {
		return nil, nil
	}
	var pemData [][]byte
	for _, path := range []string{cmd.TLS.CertFile, cmd.TLS.KeyFile} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		pemData = append(pemData, data)
	}
	tlsConfig, err := httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS config: %w", err)
	}
	return tlsConfig, nil
}
