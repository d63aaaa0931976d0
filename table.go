package router

// routeKey locates the single bucket a pattern can live in: its method plus
// its segment count.
type routeKey struct {
	method   string
	segments int
}

// A route pairs a pattern with its handler. Buckets keep routes in
// registration order.
type route struct {
	pattern Pattern
	handler Handler
}

// A table is the lookup structure behind a Router: every registered route,
// bucketed by (method, segment count). It is never mutated after buildTable.
type table map[routeKey][]route

func buildTable(routes []route) table {
	t := make(table, len(routes))

	for _, r := range routes {
		k := routeKey{method: r.pattern.Method(), segments: r.pattern.Len()}
		t[k] = append(t[k], r)
	}

	return t
}

// lookup splits path into components, picks the bucket for the method and
// component count, and scans it in registration order. The first pattern
// whose literal segments all match wins; its wildcard captures are returned
// in segment order. Captures are substrings of path.
func (t table) lookup(method, path string) (Handler, []string, bool) {
	components := splitPath(path)

	bucket, ok := t[routeKey{method: method, segments: len(components)}]
	if !ok {
		return nil, nil, false
	}

	var params []string
	for _, r := range bucket {
		matched, ok := r.pattern.match(components, params[:0])
		if ok {
			return r.handler, matched, true
		}
		params = matched
	}

	return nil, nil, false
}
