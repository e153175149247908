package http

import "net/http"

// GetJSON mounts a pure JSON handler for GET and HEAD
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	call := JSONHandler(h)
	r.Get(path, call)
	r.Head(path, call)
}
