// Package jqr pretty-prints JSON data with optional JSONPath querying and
// converts documents between JSON and YAML.
//
// # Basic Usage
//
//	output, err := jqr.PrettyPrint([]byte(`{"user":{"name":"Alice"}}`), "$.user.name")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(output)
//	// "Alice"
//
// Query outcomes are folded into the output value rather than raised as
// errors: a query that fails to compile yields the string
// "Invalid JSONPath query", and an indefinite query with no matches yields
// "No results found". Callers that need to tell cardinality apart from
// value shape should use Matches, which never collapses the result.
package jqr

import (
	"github.com/morlim/jqr/internal/convert"
	"github.com/morlim/jqr/internal/document"
	"github.com/morlim/jqr/internal/query"
	"github.com/morlim/jqr/internal/render"
	"github.com/morlim/jqr/internal/result"
)

// Sentinel errors returned by the parsing and querying entry points.
var (
	ErrInvalidJSON  = document.ErrInvalidJSON
	ErrInvalidYAML  = document.ErrInvalidYAML
	ErrInvalidQuery = query.ErrInvalidQuery
)

// Match is one resolved query result together with the normalized path of
// the location it was selected from.
type Match struct {
	Path  string
	Value any
}

// PrettyPrint parses content as JSON, optionally filters it with a JSONPath
// query, and returns the result as indented JSON text. An empty query is
// the no-query mode: the document itself is rendered unchanged. Query
// failures never surface as errors; they fold into the output (see
// Extract). The only errors are malformed input JSON and serialization
// failures.
func PrettyPrint(content []byte, queryExpr string) (string, error) {
	doc, err := document.Parse(content)
	if err != nil {
		return "", err
	}

	if queryExpr == "" {
		return render.JSON(doc)
	}

	return render.JSON(Extract(doc, queryExpr))
}

// Extract evaluates a JSONPath expression against a parsed document and
// folds the selection into a single JSON value:
//
//   - an expression that fails to compile yields the string "Invalid JSONPath query"
//   - an indefinite expression with no matches yields the string "No results found"
//   - a definite expression addressing a missing location yields null
//   - exactly one match yields its value directly, never array-wrapped
//   - several matches yield an array of values in document order
//
// The returned value never aliases doc; matched values are deep copied.
func Extract(doc any, expr string) any {
	compiled, err := query.Compile(expr)
	if err != nil {
		return result.Invalid().JSON()
	}

	return result.Normalize(compiled.Evaluate(doc)).JSON()
}

// Matches evaluates a JSONPath expression against a parsed document and
// returns every match without collapsing cardinality, so a single match
// that happens to be an array is distinguishable from several matches. An
// absent match is reported with a null value and an empty path. Returns an
// error wrapping ErrInvalidQuery if the expression does not compile.
func Matches(doc any, expr string) ([]Match, error) {
	compiled, err := query.Compile(expr)
	if err != nil {
		return nil, err
	}

	seq := compiled.Evaluate(doc)
	matches := make([]Match, 0, len(seq))
	for _, m := range seq {
		matches = append(matches, Match{Path: m.Location, Value: result.Resolve(m)})
	}

	return matches, nil
}

// ToYAML converts JSON text to YAML text.
func ToYAML(content []byte) (string, error) {
	return convert.ToYAML(content)
}

// ToJSON converts YAML text to indented JSON text.
func ToJSON(content []byte) (string, error) {
	return convert.ToJSON(content)
}
