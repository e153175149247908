// Package httpkit is the http surface modules build on, so module code never
// imports internal/platform/net/http itself
package httpkit

import (
	"net/http"

	phttp "coursedex/internal/platform/net/http"
	"coursedex/internal/platform/net/http/bind"
)

// platform types under module facing names
type (
	Envelope = phttp.Envelope
	Page     = phttp.Page
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

var (
	// OK is a 200 with data
	OK = phttp.OK
	// Error maps err to its status and an error envelope
	Error = phttp.Error
	// List is a 200 with one page of items
	List = phttp.List
	// Param reads a path parameter
	Param = phttp.Param
)

// Call writes fn's value, or its error, as an envelope
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.JSONHandler(fn) }

// Handle writes a Response built by fn
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Query binds and validates the url query into T
func Query[T any](r *http.Request) (T, error) { return bind.Query[T](r) }
