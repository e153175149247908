package httpkit

import (
	"net/http"

	phttp "coursedex/internal/platform/net/http"
)

type routeRec struct {
	verb string
	path string
	ph   phttp.Handler
	h    http.Handler
}

// fakeRouter records every call and passes itself as the subrouter
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	recs      []routeRec
}

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}


func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Handle(path string, h http.Handler) {
	f.recs = append(f.recs, routeRec{verb: "HANDLE", path: path, h: h})
}

func (f *fakeRouter) Get(path string, h phttp.Handler) {
	f.recs = append(f.recs, routeRec{verb: http.MethodGet, path: path, ph: h})
}

func (f *fakeRouter) Head(path string, h phttp.Handler) {
	f.recs = append(f.recs, routeRec{verb: http.MethodHead, path: path, ph: h})
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }
