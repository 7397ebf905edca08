package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// run() renders errors red on terminals; keep messages comparable.
	color.NoColor = true
}

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write test input: %v", err)
	}
	return path
}

func TestRunPrettyPrintsFile(t *testing.T) {
	path := writeInput(t, `{"age": 30, "name": "Alice"}`)

	result := run([]string{"jqr", path}, strings.NewReader(""))

	if result.ExitCode != 0 {
		t.Fatalf("run() exitCode = %d, want 0", result.ExitCode)
	}
	want := "{\n  \"age\": 30,\n  \"name\": \"Alice\"\n}\n"
	if result.Message != want {
		t.Fatalf("run() output = %q, want %q", result.Message, want)
	}
}

func TestRunAppliesQuery(t *testing.T) {
	path := writeInput(t, `{"user":{"name":"Alice"}}`)

	result := run([]string{"jqr", path, "$.user.name"}, strings.NewReader(""))

	if result.ExitCode != 0 {
		t.Fatalf("run() exitCode = %d, want 0", result.ExitCode)
	}
	if result.Message != "\"Alice\"\n" {
		t.Fatalf("run() output = %q, want %q", result.Message, "\"Alice\"\n")
	}
}

func TestRunReadsQueryInputFromStdin(t *testing.T) {
	stdin := strings.NewReader(`{"users":[{"name":"Alice"},{"name":"Bob"}]}`)

	result := run([]string{"jqr", "$.users[*].name"}, stdin)

	if result.ExitCode != 0 {
		t.Fatalf("run() exitCode = %d, want 0", result.ExitCode)
	}
	want := "[\n  \"Alice\",\n  \"Bob\"\n]\n"
	if result.Message != want {
		t.Fatalf("run() output = %q, want %q", result.Message, want)
	}
}

func TestRunInvalidQueryIsOutputNotFailure(t *testing.T) {
	path := writeInput(t, `{"user":{"name":"Alice"}}`)

	result := run([]string{"jqr", path, "$["}, strings.NewReader(""))

	if result.ExitCode != 0 {
		t.Fatalf("run() exitCode = %d, want 0; bad queries fold into the output", result.ExitCode)
	}
	if result.Message != "\"Invalid JSONPath query\"\n" {
		t.Fatalf("run() output = %q, want %q", result.Message, "\"Invalid JSONPath query\"\n")
	}
}

func TestRunConvertsToYAML(t *testing.T) {
	path := writeInput(t, `{"name":"Alice"}`)

	result := run([]string{"jqr", "--to-yaml", path}, strings.NewReader(""))

	if result.ExitCode != 0 {
		t.Fatalf("run() exitCode = %d, want 0", result.ExitCode)
	}
	if result.Message != "name: Alice\n" {
		t.Fatalf("run() output = %q, want %q", result.Message, "name: Alice\n")
	}
}

func TestRunConvertsToJSON(t *testing.T) {
	stdin := strings.NewReader("name: Alice\n")

	result := run([]string{"jqr", "--to-json"}, stdin)

	if result.ExitCode != 0 {
		t.Fatalf("run() exitCode = %d, want 0", result.ExitCode)
	}
	want := "{\n  \"name\": \"Alice\"\n}\n"
	if result.Message != want {
		t.Fatalf("run() output = %q, want %q", result.Message, want)
	}
}

func TestRunInvalidJSONFails(t *testing.T) {
	path := writeInput(t, "invalid json")

	result := run([]string{"jqr", path}, strings.NewReader(""))

	if result.ExitCode != 1 {
		t.Fatalf("run() exitCode = %d, want 1", result.ExitCode)
	}
	if !strings.Contains(result.Message, "invalid JSON") {
		t.Fatalf("run() message = %q, want it to mention invalid JSON", result.Message)
	}
}

func TestRunMissingFileFails(t *testing.T) {
	result := run([]string{"jqr", filepath.Join(t.TempDir(), "missing.json")}, strings.NewReader(""))

	if result.ExitCode != 1 {
		t.Fatalf("run() exitCode = %d, want 1", result.ExitCode)
	}
	if !strings.Contains(result.Message, "Error reading input") {
		t.Fatalf("run() message = %q, want a read error", result.Message)
	}
}

func TestRunWithoutArgumentsPrintsUsage(t *testing.T) {
	result := run([]string{"jqr"}, strings.NewReader(""))

	if result.ExitCode != 0 {
		t.Fatalf("run() exitCode = %d, want 0", result.ExitCode)
	}
	if !strings.Contains(result.Message, "Usage:") {
		t.Fatalf("run() message = %q, want usage text", result.Message)
	}
}
