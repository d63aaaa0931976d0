package router

import "strings"

func validatePath(path string) {
	switch {
	case len(path) == 0 || !strings.HasPrefix(path, "/"):
		panic("path must begin with '/' in path '" + path + "'")
	}
}

// splitPath splits path into its non-empty slash-delimited components.
// Empty components produced by leading, trailing or doubled slashes are
// dropped; nothing else is rewritten.
func splitPath(path string) []string {
	components := strings.Split(path, "/")

	n := 0
	for _, c := range components {
		if c != "" {
			components[n] = c
			n++
		}
	}

	return components[:n]
}
