// Package http adapts return style handlers onto net/http and writes every
// body in the shared envelope
package http

import (
	stdhttp "net/http"

	pnet "coursedex/internal/platform/net"
)

type (
	// Envelope is the body of every response
	Envelope = pnet.Envelope
	// Page is the paging block of list responses
	Page = pnet.Page
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) { pnet.Write(w, status, v) }

// RespondError writes err as an error envelope
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := pnet.Failure(err, pnet.RequestID(r.Context()))
	pnet.Write(w, status, env)
}

// Response is what return style handlers produce; an error Body wins over Status
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
	Page   *Page
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response whose status comes from err
func Error(err error) Response { return Response{Body: err} }

// List returns a 200 response carrying one page of items
func List(items any, total, page, size int) Response {
	return Response{Status: stdhttp.StatusOK, Body: items, Page: &Page{Total: total, Page: page, PageSize: size}}
}

// Handle adapts a Response returning func to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
		if err, ok := resp.Body.(error); ok && err != nil {
			RespondError(w, r, err)
			return
		}
		status := resp.Status
		if status == 0 {
			status = stdhttp.StatusOK
		}
		pnet.Write(w, status, pnet.Success(status, resp.Body, resp.Page, pnet.RequestID(r.Context())))
	}
}
