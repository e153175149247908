package httpkit

import (
	"net/http"

	phttp "coursedex/internal/platform/net/http"
)

// Get registers a (value, error) handler under GET and HEAD
func Get(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }
