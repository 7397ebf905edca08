// Package document parses JSON and YAML text into the in-memory tree the
// query and render layers operate on: nested map[string]any, []any and
// scalar values.
package document

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

var (
	// ErrInvalidJSON indicates the input text is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrInvalidYAML indicates the input text is not well-formed YAML.
	ErrInvalidYAML = errors.New("invalid YAML")
)

// Parse decodes JSON text into a document tree.
func Parse(content []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return doc, nil
}

// ParseYAML decodes YAML text into a document tree. Mappings decode to
// map[string]any, so the result is directly JSON-serializable.
func ParseYAML(content []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return doc, nil
}
