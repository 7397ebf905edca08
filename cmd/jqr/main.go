package main

import (
	"errors"
	"io"
	"os"

	"github.com/morlim/jqr"
	"github.com/morlim/jqr/internal/config"
	"github.com/morlim/jqr/internal/exit"
)

func main() {
	result := run(os.Args, os.Stdin)
	result.Print()
	os.Exit(result.ExitCode)
}

func run(args []string, stdin io.Reader) *exit.Result {
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) || errors.Is(err, config.ErrNoArguments) {
			return exit.Success(config.Usage() + "\n")
		}
		return exit.Errorf("Error: %v\n\n%s\n", err, config.Usage())
	}

	content, err := readInput(cfg.File, stdin)
	if err != nil {
		return exit.Errorf("Error reading input: %v\n", err)
	}

	output, err := process(cfg, content)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	return exit.Success(output + "\n")
}

func process(cfg *config.Config, content []byte) (string, error) {
	switch cfg.Mode {
	case config.ModeToYAML:
		return jqr.ToYAML(content)
	case config.ModeToJSON:
		return jqr.ToJSON(content)
	default:
		return jqr.PrettyPrint(content, cfg.Query)
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}
