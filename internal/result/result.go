// Package result folds an evaluated match sequence into the single JSON
// value handed back to the caller. The outcome is carried as a tagged type
// internally; the sentinel strings only appear at the serialization
// boundary, so callers can branch on state without string matching.
package result

import (
	"github.com/morlim/jqr/internal/query"
)

// Sentinel values surfaced in place of data. They are part of the
// observable CLI contract and must not change.
const (
	SentinelNoResults    = "No results found"
	SentinelInvalidQuery = "Invalid JSONPath query"
)

type state int

const (
	stateInvalidQuery state = iota
	stateEmpty
	stateValue
)

// Outcome is the normalized result of one evaluation: a value, an empty
// selection, or a query that failed to compile.
type Outcome struct {
	state state
	value any
}

// Invalid is the outcome of a query that failed to compile.
func Invalid() Outcome {
	return Outcome{state: stateInvalidQuery}
}

// Normalize folds a match sequence into a single outcome: zero matches map
// to the empty state, one match to its bare resolved value, several to an
// array of resolved values in sequence order.
func Normalize(seq query.Sequence) Outcome {
	switch len(seq) {
	case 0:
		return Outcome{state: stateEmpty}
	case 1:
		return Outcome{state: stateValue, value: Resolve(seq[0])}
	default:
		return Outcome{state: stateValue, value: ResolveAll(seq)}
	}
}

// Empty reports whether the selection matched nothing.
func (o Outcome) Empty() bool {
	return o.state == stateEmpty
}

// InvalidQuery reports whether the query failed to compile.
func (o Outcome) InvalidQuery() bool {
	return o.state == stateInvalidQuery
}

// Value returns the resolved value and whether the outcome carries one.
func (o Outcome) Value() (any, bool) {
	return o.value, o.state == stateValue
}

// JSON flattens the outcome to the single JSON value handed to the
// serializer, substituting the sentinel strings for the non-value states.
func (o Outcome) JSON() any {
	switch o.state {
	case stateInvalidQuery:
		return SentinelInvalidQuery
	case stateEmpty:
		return SentinelNoResults
	default:
		return o.value
	}
}

// Resolve applies the per-match ownership policy: borrowed values are deep
// copied so the output never aliases the document, synthesized values are
// taken as-is, absent matches resolve to JSON null.
func Resolve(m query.Match) any {
	switch m.Kind {
	case query.KindBorrowed:
		return deepCopy(m.Value)
	case query.KindSynthesized:
		return m.Value
	default:
		return nil
	}
}

// ResolveAll resolves every match in order without collapsing cardinality.
// Absent matches resolve to null rather than being omitted, so positions
// stay aligned with the sequence.
func ResolveAll(seq query.Sequence) []any {
	out := make([]any, 0, len(seq))
	for _, m := range seq {
		out = append(out, Resolve(m))
	}

	return out
}
