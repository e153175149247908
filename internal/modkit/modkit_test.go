package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"coursedex/internal/modkit/httpkit"
	phttp "coursedex/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func tag(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Mw", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestBuild_LaterOptionsWin(t *testing.T) {
	type catalogPorts struct{ Ready bool }

	b := Build(
		WithName("catalog"),
		WithPrefix("/catalog"),
		WithPrefix("/courses"),
		WithMiddlewares(tag("a")),
		WithMiddlewares(tag("b")),
		WithPorts(catalogPorts{Ready: true}),
	)
	if b.Name != "catalog" || b.Prefix != "/courses" {
		t.Fatalf("name/prefix = %q %q", b.Name, b.Prefix)
	}
	if len(b.Mw) != 2 {
		t.Fatalf("middlewares = %d, want 2", len(b.Mw))
	}
	if p, ok := b.Ports.(catalogPorts); !ok || !p.Ready {
		t.Fatalf("ports = %#v", b.Ports)
	}
	if z := Build(); z.Name != "" || z.Subrouter != nil || z.Register != nil {
		t.Fatalf("zero build = %+v", z)
	}
}

func TestBuilt_Mount(t *testing.T) {
	var order []string
	b := Build(
		WithPrefix("/catalog/"),
		WithMiddlewares(tag("module")),
		WithSubrouter(func(r httpkit.Router) httpkit.Router {
			order = append(order, "subrouter")
			return r
		}),
		WithRegister(func(r httpkit.Router) {
			order = append(order, "extra")
			httpkit.Get(r, "/extra", func(*http.Request) (any, error) { return "x", nil })
		}),
	)

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		order = append(order, "own")
		httpkit.Get(r, "/totals", func(*http.Request) (any, error) { return 3, nil })
	})

	if len(order) != 3 || order[0] != "subrouter" || order[1] != "own" || order[2] != "extra" {
		t.Fatalf("mount order = %v", order)
	}
	for _, path := range []string{"/catalog/totals", "/catalog/extra"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Header().Get("X-Mw") != "module" {
			t.Fatalf("%s = %d mw=%q", path, rec.Code, rec.Header().Get("X-Mw"))
		}
	}
}

func TestBuilt_MountRejectsRoot(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("mounting without a prefix should panic")
		}
	}()
	Build().Mount(phttp.AdaptChi(chi.NewRouter()), func(httpkit.Router) {})
}
