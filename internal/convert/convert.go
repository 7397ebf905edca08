// Package convert translates whole documents between JSON and YAML text.
package convert

import (
	"github.com/morlim/jqr/internal/document"
	"github.com/morlim/jqr/internal/render"
)

// ToYAML converts JSON text to YAML text.
func ToYAML(content []byte) (string, error) {
	doc, err := document.Parse(content)
	if err != nil {
		return "", err
	}

	return render.YAML(doc)
}

// ToJSON converts YAML text to indented JSON text.
func ToJSON(content []byte) (string, error) {
	doc, err := document.ParseYAML(content)
	if err != nil {
		return "", err
	}

	return render.JSON(doc)
}
