// Package query evaluates compiled JSONPath expressions against a document
// tree and presents the results as an ordered match sequence with explicit
// provenance, so the normalization layer can decide ownership per match.
package query

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"
)

// ErrInvalidQuery indicates a path expression that failed to compile.
var ErrInvalidQuery = errors.New("invalid JSONPath query")

// Kind classifies the provenance of a matched value.
type Kind int

const (
	// KindBorrowed marks a value that exists verbatim inside the document.
	// It must be copied before it outlives the evaluation.
	KindBorrowed Kind = iota
	// KindSynthesized marks a value computed by the expression engine.
	// It is already independently owned.
	KindSynthesized
	// KindAbsent marks a definite path that addressed a missing location.
	KindAbsent
)

// Match is one located result of evaluating an expression against a
// document.
type Match struct {
	Kind  Kind
	Value any
	// Location is the normalized path of the matched node. Empty for
	// absent and synthesized matches, which have no location in the
	// document.
	Location string
}

// Sequence is an ordered list of matches in document traversal order.
type Sequence []Match

// Expression is a compiled, executable path expression.
type Expression struct {
	path     *jsonpath.Path
	raw      string
	singular bool
}

// Compile parses expr into an executable expression. Failures wrap
// ErrInvalidQuery.
func Compile(expr string) (*Expression, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	return &Expression{path: path, raw: expr, singular: isSingular(expr)}, nil
}

// String returns the source text of the expression.
func (e *Expression) String() string {
	return e.raw
}

// Evaluate runs the expression against doc and returns its matches in
// document order. The document is never mutated.
//
// A definite path that selects nothing yields a single absent match, while
// an indefinite path (wildcard, slice, filter, descendant, union) that
// selects nothing yields an empty sequence. The two are distinct outcomes:
// the former resolves to null downstream, the latter to "no results".
func (e *Expression) Evaluate(doc any) Sequence {
	located := e.path.SelectLocated(doc)
	if len(located) == 0 {
		if e.singular {
			return Sequence{{Kind: KindAbsent}}
		}
		return Sequence{}
	}

	// Object members come back in Go map iteration order. Sorting by
	// normalized path keeps array elements in document order and puts
	// object members in canonical key order, so the same document and
	// expression always produce the same sequence.
	located.Sort()

	seq := make(Sequence, 0, len(located))
	for _, node := range located {
		seq = append(seq, Match{
			Kind:     KindBorrowed,
			Value:    node.Node,
			Location: node.Path.String(),
		})
	}

	return seq
}
