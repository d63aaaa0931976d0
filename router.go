package router

import (
	"strings"

	"github.com/savsgio/gotils/strconv"
	"github.com/valyala/fasthttp"
)

// A Handler responds to a dispatched request. params holds the path
// components captured by the pattern's wildcards, in pattern order; it may
// be nil for patterns without wildcards and must not be retained after the
// handler returns. A non-nil error is handed back to the caller of Dispatch
// unmodified.
type Handler func(ctx *fasthttp.RequestCtx, params []string) error

// An ErrorHandler renders a handler failure into a response.
type ErrorHandler func(ctx *fasthttp.RequestCtx, err error)

// A Builder accumulates routes and builds immutable Routers.
type Builder struct {
	routes []route

	// NotFound is invoked when no route matches.
	// A plain 404 "Not Found" response is written by default.
	NotFound fasthttp.RequestHandler

	// ErrorHandler renders errors returned by handlers when requests come
	// in through Handler. A 500 response carrying the error text is written
	// by default.
	ErrorHandler ErrorHandler
}

// New returns an empty route builder.
func New() *Builder {
	return &Builder{}
}

// Group returns a new group with the given path prefix.
// Wildcards are allowed in the prefix.
func (b *Builder) Group(path string) *Group {
	validatePath(path)

	if path != "/" && strings.HasSuffix(path, "/") {
		panic("group path must not end with a trailing slash")
	}

	return &Group{
		builder: b,
		prefix:  path,
	}
}

// Register adds a route for the given pattern. When several patterns in the
// same bucket match a path, the one registered first wins; registering the
// same pattern twice keeps both, the later one unreachable.
func (b *Builder) Register(p Pattern, handler Handler) *Builder {
	switch {
	case len(p.method) == 0:
		panic("method must not be empty")
	case handler == nil:
		panic("handler must not be nil")
	}

	b.routes = append(b.routes, route{pattern: p, handler: handler})

	return b
}

// Handle registers a new request handler with the given path and method.
// Each Wildcard component of the path, e.g. "/user/_/posts", captures one
// component of the request path.
//
// For GET, POST, PUT, PATCH and DELETE requests the respective shortcut
// functions can be used; for other or custom methods Handle is the way in.
func (b *Builder) Handle(method, path string, handler Handler) *Builder {
	switch {
	case len(method) == 0:
		panic("method must not be empty")
	case handler == nil:
		panic("handler must not be nil")
	default:
		validatePath(path)
	}

	return b.Register(NewPattern(method, splitPath(path)...), handler)
}

// GET is a shortcut for builder.Handle(fasthttp.MethodGet, path, handler)
func (b *Builder) GET(path string, handler Handler) *Builder {
	return b.Handle(fasthttp.MethodGet, path, handler)
}

// HEAD is a shortcut for builder.Handle(fasthttp.MethodHead, path, handler)
func (b *Builder) HEAD(path string, handler Handler) *Builder {
	return b.Handle(fasthttp.MethodHead, path, handler)
}

// POST is a shortcut for builder.Handle(fasthttp.MethodPost, path, handler)
func (b *Builder) POST(path string, handler Handler) *Builder {
	return b.Handle(fasthttp.MethodPost, path, handler)
}

// PUT is a shortcut for builder.Handle(fasthttp.MethodPut, path, handler)
func (b *Builder) PUT(path string, handler Handler) *Builder {
	return b.Handle(fasthttp.MethodPut, path, handler)
}

// PATCH is a shortcut for builder.Handle(fasthttp.MethodPatch, path, handler)
func (b *Builder) PATCH(path string, handler Handler) *Builder {
	return b.Handle(fasthttp.MethodPatch, path, handler)
}

// DELETE is a shortcut for builder.Handle(fasthttp.MethodDelete, path, handler)
func (b *Builder) DELETE(path string, handler Handler) *Builder {
	return b.Handle(fasthttp.MethodDelete, path, handler)
}

// CONNECT is a shortcut for builder.Handle(fasthttp.MethodConnect, path, handler)
func (b *Builder) CONNECT(path string, handler Handler) *Builder {
	return b.Handle(fasthttp.MethodConnect, path, handler)
}

// OPTIONS is a shortcut for builder.Handle(fasthttp.MethodOptions, path, handler)
func (b *Builder) OPTIONS(path string, handler Handler) *Builder {
	return b.Handle(fasthttp.MethodOptions, path, handler)
}

// TRACE is a shortcut for builder.Handle(fasthttp.MethodTrace, path, handler)
func (b *Builder) TRACE(path string, handler Handler) *Builder {
	return b.Handle(fasthttp.MethodTrace, path, handler)
}

// Build snapshots the registered routes into an immutable Router. The
// builder stays usable afterwards; routes registered later never show up in
// routers built earlier.
func (b *Builder) Build() *Router {
	r := &Router{
		table:    buildTable(b.routes),
		paths:    make(map[string][]string),
		notFound: b.NotFound,
		onError:  b.ErrorHandler,
	}

	if r.notFound == nil {
		r.notFound = defaultNotFound
	}
	if r.onError == nil {
		r.onError = defaultErrorHandler
	}

	for _, rt := range b.routes {
		method := rt.pattern.Method()
		r.paths[method] = append(r.paths[method], rt.pattern.String())
	}

	return r
}

// A Router matches request method + path combos against its route table.
// Routers are immutable and safe for concurrent use by multiple goroutines
// without locking.
type Router struct {
	table    table
	paths    map[string][]string
	notFound fasthttp.RequestHandler
	onError  ErrorHandler
}

// List returns all registered patterns grouped by method, in registration
// order, wildcard segments rendered as the Wildcard token.
func (r *Router) List() map[string][]string {
	return r.paths
}

// Lookup allows the manual lookup of a method + path combo.
// This is e.g. useful to build a framework around this router.
// If the path was found, it returns the handler function and the components
// captured by the pattern's wildcards, in pattern order.
func (r *Router) Lookup(method, path string) (Handler, []string, bool) {
	return r.table.lookup(method, path)
}

// Dispatch routes a single request. On a match the route's handler runs and
// its error, if any, is returned unmodified. When nothing matches, the
// not-found handler writes its response and Dispatch returns nil; an
// unmatched path is not a failure.
func (r *Router) Dispatch(method, path string, ctx *fasthttp.RequestCtx) error {
	handler, params, ok := r.table.lookup(method, path)
	if !ok {
		r.notFound(ctx)
		return nil
	}

	return handler(ctx, params)
}

// Handler returns a fasthttp.RequestHandler dispatching on the request
// method and path, with handler errors rendered by the error handler.
func (r *Router) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		err := r.Dispatch(strconv.B2S(ctx.Method()), strconv.B2S(ctx.Path()), ctx)
		if err != nil {
			r.onError(ctx, err)
		}
	}
}

func defaultNotFound(ctx *fasthttp.RequestCtx) {
	ctx.Error("Not Found", fasthttp.StatusNotFound)
}

func defaultErrorHandler(ctx *fasthttp.RequestCtx, err error) {
	ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
}
