package query

import (
	"strconv"
	"strings"
)

// isSingular reports whether expr addresses at most one location: only
// child name and index segments, no wildcard, descendant, slice, filter or
// union selectors. Metacharacters inside quoted names do not count.
//
// Compilation has already validated expr, so this only has to classify, not
// reject.
func isSingular(expr string) bool {
	i := 1 // past '$'
	for i < len(expr) {
		switch expr[i] {
		case '.':
			if i+1 < len(expr) && expr[i+1] == '.' {
				return false // descendant segment
			}
			i++
			if i < len(expr) && expr[i] == '*' {
				return false
			}
			start := i
			for i < len(expr) && nameRune(expr[i]) {
				i++
			}
			if i == start {
				return false
			}
		case '[':
			end, ok := scanBracket(expr, i)
			if !ok {
				return false
			}
			if !singularBracket(expr[i+1 : end]) {
				return false
			}
			i = end + 1
		default:
			return false
		}
	}

	return true
}

// scanBracket finds the closing ']' for the bracket at start, skipping
// quoted sections.
func scanBracket(expr string, start int) (int, bool) {
	inSingle := false
	inDouble := false

	for i := start; i < len(expr); i++ {
		c := expr[i]
		if c == '\\' {
			i++
			continue
		}

		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case inSingle || inDouble:
			// inside a quoted name
		case c == ']':
			return i, true
		}
	}

	return 0, false
}

// singularBracket reports whether the bracket content selects exactly one
// child: a single quoted name or a single integer index.
func singularBracket(content string) bool {
	s := strings.TrimSpace(content)
	if s == "" || s == "*" || s[0] == '?' {
		return false
	}

	if s[0] == '\'' || s[0] == '"' {
		return wholeQuoted(s)
	}

	// Unquoted content with a comma is a union, with a colon a slice.
	if strings.ContainsAny(s, ",:") {
		return false
	}

	_, err := strconv.Atoi(s)
	return err == nil
}

// wholeQuoted reports whether s is exactly one quoted string, so that a
// union like 'a','b' is not mistaken for a name containing a comma.
func wholeQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}

	quote := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == quote {
			return i == len(s)-1
		}
	}

	return false
}

// nameRune checks if a byte is valid for unquoted names after '.'.
func nameRune(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_' || b == '-'
}
