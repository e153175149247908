package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is a plain handler func
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount on; the catalog is read only so only GET and
// HEAD get verb helpers
type Router interface {
	Get(path string, h Handler)
	Head(path string, h Handler)
	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(pattern string, fn func(Router))
	Mux() http.Handler
}

// AdaptChi wraps a chi mux as a Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{m} }

type chiRouter struct{ chi.Router }

func (c chiRouter) Get(p string, h Handler)  { c.Method(http.MethodGet, p, http.HandlerFunc(h)) }
func (c chiRouter) Head(p string, h Handler) { c.Method(http.MethodHead, p, http.HandlerFunc(h)) }

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.Router.Route(pattern, func(sub chi.Router) { fn(chiRouter{sub}) })
}

func (c chiRouter) Mux() http.Handler { return c.Router }

// Param returns a path parameter of the matched route
func Param(r *http.Request, name string) string { return chi.URLParam(r, name) }
