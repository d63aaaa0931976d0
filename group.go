package router

import "github.com/valyala/fasthttp"

// A Group registers routes under a shared path prefix.
type Group struct {
	builder *Builder
	prefix  string
}

// Group returns a nested group, its prefix appended to the parent's.
func (g *Group) Group(path string) *Group {
	validatePath(path)
	return g.builder.Group(g.prefix + path)
}

// Handle registers a new request handler with the group prefix prepended to
// the given path.
func (g *Group) Handle(method, path string, handler Handler) *Group {
	validatePath(path)
	g.builder.Handle(method, g.prefix+path, handler)

	return g
}

// GET is a shortcut for group.Handle(fasthttp.MethodGet, path, handler)
func (g *Group) GET(path string, handler Handler) *Group {
	return g.Handle(fasthttp.MethodGet, path, handler)
}

// HEAD is a shortcut for group.Handle(fasthttp.MethodHead, path, handler)
func (g *Group) HEAD(path string, handler Handler) *Group {
	return g.Handle(fasthttp.MethodHead, path, handler)
}

// POST is a shortcut for group.Handle(fasthttp.MethodPost, path, handler)
func (g *Group) POST(path string, handler Handler) *Group {
	return g.Handle(fasthttp.MethodPost, path, handler)
}

// PUT is a shortcut for group.Handle(fasthttp.MethodPut, path, handler)
func (g *Group) PUT(path string, handler Handler) *Group {
	return g.Handle(fasthttp.MethodPut, path, handler)
}

// PATCH is a shortcut for group.Handle(fasthttp.MethodPatch, path, handler)
func (g *Group) PATCH(path string, handler Handler) *Group {
	return g.Handle(fasthttp.MethodPatch, path, handler)
}

// DELETE is a shortcut for group.Handle(fasthttp.MethodDelete, path, handler)
func (g *Group) DELETE(path string, handler Handler) *Group {
	return g.Handle(fasthttp.MethodDelete, path, handler)
}

// CONNECT is a shortcut for group.Handle(fasthttp.MethodConnect, path, handler)
func (g *Group) CONNECT(path string, handler Handler) *Group {
	return g.Handle(fasthttp.MethodConnect, path, handler)
}

// OPTIONS is a shortcut for group.Handle(fasthttp.MethodOptions, path, handler)
func (g *Group) OPTIONS(path string, handler Handler) *Group {
	return g.Handle(fasthttp.MethodOptions, path, handler)
}

// TRACE is a shortcut for group.Handle(fasthttp.MethodTrace, path, handler)
func (g *Group) TRACE(path string, handler Handler) *Group {
	return g.Handle(fasthttp.MethodTrace, path, handler)
}
