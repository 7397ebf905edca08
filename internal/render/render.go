// Package render is the serialization boundary: it turns a document tree
// into indented JSON or YAML text.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// JSON renders v as indented JSON text with two-space indentation and
// sorted object keys, without a trailing newline.
func JSON(v any) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return "", fmt.Errorf("encode JSON: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// YAML renders v as YAML text, without a trailing newline.
func YAML(v any) (string, error) {
	payload, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode YAML: %w", err)
	}

	return strings.TrimSuffix(string(payload), "\n"), nil
}
