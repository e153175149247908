package http

import "net/http"

// JSONHandler adapts a (value, error) handler to a platform Handler
// a Response returned as the value is written as is so handlers can page or set headers
func JSONHandler(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}
