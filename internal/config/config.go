// Package config parses CLI arguments for the jqr command.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

var (
	ErrNoArguments      = errors.New("no arguments provided")
	ErrHelp             = errors.New("help requested")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrConflictingModes = errors.New("--to-yaml and --to-json are mutually exclusive")
)

// Mode selects what the tool does with its input.
type Mode int

const (
	// ModePretty pretty-prints JSON input, optionally filtered by a query.
	ModePretty Mode = iota
	// ModeToYAML converts JSON input to YAML.
	ModeToYAML
	// ModeToJSON converts YAML input to JSON.
	ModeToJSON
)

// Config defines CLI options for the jqr command.
type Config struct {
	File  string // input path; empty means stdin
	Query string // JSONPath query; empty means pretty-print only
	Mode  Mode
}

// Parse parses and validates CLI arguments. A sole positional argument
// starting with '$' is treated as the query, with input read from stdin.
func Parse(args []string) (*Config, error) {
	if len(args) <= 1 {
		return nil, ErrNoArguments
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	toYAML := fs.Bool("to-yaml", false, "Convert JSON input to YAML")
	toJSON := fs.Bool("to-json", false, "Convert YAML input to JSON")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	if *toYAML && *toJSON {
		return nil, ErrConflictingModes
	}

	cfg := &Config{}
	switch {
	case *toYAML:
		cfg.Mode = ModeToYAML
	case *toJSON:
		cfg.Mode = ModeToJSON
	}

	rest := fs.Args()
	switch len(rest) {
	case 0:
	case 1:
		if strings.HasPrefix(rest[0], "$") {
			cfg.Query = rest[0]
		} else {
			cfg.File = rest[0]
		}
	case 2:
		cfg.File = rest[0]
		cfg.Query = rest[1]
	default:
		return nil, fmt.Errorf("%w: %s", ErrTooManyArguments, strings.Join(rest[2:], " "))
	}

	return cfg, nil
}

// Usage returns command usage text.
func Usage() string {
	return `jqr - pretty-print and query JSON data

Usage:
  jqr [FILE] [QUERY]
  jqr --to-yaml [FILE]
  jqr --to-json [FILE]

Arguments:
  FILE    Path to input file. If omitted, reads from stdin.
  QUERY   JSONPath query (e.g. '$.user.name'). A single argument starting
          with '$' is treated as the query.

Options:
  --to-yaml     Convert JSON input to YAML
  --to-json     Convert YAML input to JSON
  -h, --help    Show this help message`
}
