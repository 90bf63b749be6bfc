package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	// Packages
	kong "github.com/alecthomas/kong"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// yamlConfig is a kong configuration loader for YAML files. A flag named
// "http.addr" is looked up as the key "http.addr" or nested as http: addr:,
// with dashes optionally written as underscores.
func yamlConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, name := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if value, ok := lookup(values, name); ok {
				return value, nil
			}
		}
		return nil, nil
	}), nil
}

func lookup(values map[string]any, name string) (any, bool) {
	if value, exists := values[name]; exists {
		return value, true
	}
	head, tail, found := strings.Cut(name, ".")
	if !found {
		return nil, false
	}
	if nested, ok := values[head].(map[string]any); ok {
		return lookup(nested, tail)
	}
	return nil, false
}
