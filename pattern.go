package router

import "strings"

// Wildcard is the pattern token that matches any single path component.
const Wildcard = "_"

// A Segment is one slash-delimited element of a route pattern: either a
// literal component or a wildcard.
type Segment struct {
	// Value is the literal text of the segment. It is empty for wildcards.
	Value string

	// Wild marks the segment as a wildcard matching any non-empty component.
	Wild bool
}

// A Pattern is the ordered segment list a route matches against, bound to one
// HTTP method. Patterns are immutable once built; the zero-length pattern
// matches the root path "/".
type Pattern struct {
	method   string
	segments []Segment
}

// NewPattern builds a pattern from an ordered token list. Every token is a
// literal segment, except the Wildcard token which becomes a wildcard
// segment. It panics if method or any token is empty.
func NewPattern(method string, tokens ...string) Pattern {
	if len(method) == 0 {
		panic("method must not be empty")
	}

	segments := make([]Segment, len(tokens))
	for i, token := range tokens {
		switch token {
		case "":
			panic("pattern token must not be empty")
		case Wildcard:
			segments[i] = Segment{Wild: true}
		default:
			segments[i] = Segment{Value: token}
		}
	}

	return Pattern{method: method, segments: segments}
}

// ParsePattern builds a pattern from a path string, e.g. "/user/_/posts".
// The path is split on '/' and empty components are dropped, so "/" (or any
// run of slashes) yields the root pattern. No other normalization happens.
func ParsePattern(method, path string) Pattern {
	return NewPattern(method, splitPath(path)...)
}

// Method returns the HTTP method the pattern is bound to.
func (p Pattern) Method() string {
	return p.method
}

// Len returns the number of segments.
func (p Pattern) Len() int {
	return len(p.segments)
}

// Segment returns the i-th segment.
func (p Pattern) Segment(i int) Segment {
	return p.segments[i]
}

// Equal reports whether two patterns are interchangeable for routing: same
// method, same length, pairwise identical segments.
func (p Pattern) Equal(o Pattern) bool {
	if p.method != o.method || len(p.segments) != len(o.segments) {
		return false
	}

	for i, s := range p.segments {
		if s != o.segments[i] {
			return false
		}
	}

	return true
}

// String renders the pattern in path notation, wildcard segments as the
// Wildcard token. The root pattern renders as "/".
func (p Pattern) String() string {
	if len(p.segments) == 0 {
		return "/"
	}

	var b strings.Builder
	for _, s := range p.segments {
		b.WriteByte('/')
		if s.Wild {
			b.WriteString(Wildcard)
		} else {
			b.WriteString(s.Value)
		}
	}

	return b.String()
}

// match reports whether components satisfies the pattern, appending each
// component consumed by a wildcard to params in segment order. It assumes
// len(components) == p.Len(); buckets only ever hold patterns of one length.
func (p Pattern) match(components, params []string) ([]string, bool) {
	for i, s := range p.segments {
		if s.Wild {
			params = append(params, components[i])
		} else if s.Value != components[i] {
			return params, false
		}
	}

	return params, true
}
