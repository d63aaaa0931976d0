/*
Package router is a hash-table based HTTP request router for fasthttp.

A trivial example is:

	package main

	import (
		"fmt"
		"log"

		"github.com/flatmux/router"
		"github.com/valyala/fasthttp"
	)

	// Index is the index handler
	func Index(ctx *fasthttp.RequestCtx, _ []string) error {
		fmt.Fprint(ctx, "Welcome!\n")
		return nil
	}

	// Hello is the Hello handler
	func Hello(ctx *fasthttp.RequestCtx, params []string) error {
		fmt.Fprintf(ctx, "hello, %s!\n", params[0])
		return nil
	}

	func main() {
		r := router.New().
			GET("/", Index).
			GET("/hello/_", Hello).
			Build()

		log.Fatal(fasthttp.ListenAndServe(":8080", r.Handler()))
	}

The router matches incoming requests by the request method and the path.
A registered path contains one type of parameter, the wildcard:

	Syntax	Type
	_     	wildcard, one path component

A wildcard matches exactly one non-empty path component. The matched
components are collected left to right and passed to the handler as a
positional slice:

	Path: /blog/_/_

	Requests:
	 /blog/go/request-routers            match: params = ["go", "request-routers"]
	 /blog/go/request-routers/           match: trailing slash adds no component
	 /blog/go/                           no match, one component short
	 /blog/go/request-routers/comments   no match, one component long

Matching is a hash lookup followed by a linear scan. Both the request path
and every registered path are split into their non-empty slash-delimited
components; no case folding, dot cleaning or redirecting is done beyond
that. Routes live in buckets keyed by the method and the component count,
so only patterns of the matching length are ever scanned. Within a bucket
routes are tried in the order they were registered and the first pattern
whose literal components all match wins, regardless of how specific a later
pattern might be. Register the more specific pattern first if two overlap:

	b.GET("/user/settings", Settings) // wins for /user/settings
	b.GET("/user/_", Profile)         // everything else under /user

Routes are registered on a Builder; Build snapshots them into a Router that
cannot change afterwards, so a Router may be shared by any number of
goroutines without locking. Dispatching never matches across methods or
lengths: if no route in the request's bucket matches, the not-found handler
answers (404 by default) and errors returned by handlers surface through
the router's error handler (500 by default). Both are replaceable via the
Builder's NotFound and ErrorHandler fields.

With the fasthttp handler returned by Router.Handler the params slice
aliases the request's path buffer, which fasthttp reuses between requests.
Copy the values if they must outlive the handler.
*/
package router
