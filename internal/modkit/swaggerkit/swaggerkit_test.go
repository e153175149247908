package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursedex/internal/platform/config"
	perr "coursedex/internal/platform/errors"
	phttp "coursedex/internal/platform/net/http"
	kit "coursedex/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func fetchSpec(t *testing.T, h http.HandlerFunc) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		return rec.Code, nil
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode spec: %v", err)
	}
	return rec.Code, spec
}

func TestServeDocJSON_EmbeddedSpecIsDecorated(t *testing.T) {
	t.Setenv("DOCS_TEST_DOCS_TITLE_SUFFIX", "(dev)")
	_, spec := fetchSpec(t, serveDocJSON(config.New().Prefix("DOCS_TEST_")))

	info := spec["info"].(map[string]any)
	if info["title"] != "coursedex API (dev)" {
		t.Fatalf("title = %v", info["title"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}

	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatal("missing ErrorResponse schema")
	}

	op := spec["paths"].(map[string]any)["/catalog/totals"].(map[string]any)["get"].(map[string]any)
	resps := op["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500", "503"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("totals missing %s response", code)
		}
	}
	ex := resps["400"].(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)["example"].(map[string]any)
	if ex["code"] != float64(perr.ErrorCodeValidation) || ex["status_code"] != float64(http.StatusBadRequest) {
		t.Fatalf("400 example = %v", ex)
	}
}

func TestServeDocJSON_KeepsDeclaredResponses(t *testing.T) {
	_, spec := fetchSpec(t, serveDocJSON(config.New()))
	op := spec["paths"].(map[string]any)["/catalog/offerings/lookup"].(map[string]any)["get"].(map[string]any)
	nf := op["responses"].(map[string]any)["404"].(map[string]any)
	if nf["$ref"] != "#/components/responses/NotFound" {
		t.Fatalf("404 overwritten: %v", nf)
	}
}

func TestServeDocJSON_BadDocIs500(t *testing.T) {
	kit.Swap(t, &docReader, func() string { return "{" })
	code, _ := fetchSpec(t, serveDocJSON(config.New()))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d", code)
	}
}

func TestRegister_MutatorsRun(t *testing.T) {
	kit.Swap(t, &mutators, nil)
	Register(nil)
	Register(func(spec map[string]any) { spec["x-built-by"] = "coursedex" })

	_, spec := fetchSpec(t, serveDocJSON(config.New()))
	if spec["x-built-by"] != "coursedex" {
		t.Fatalf("mutator did not run: %v", spec["x-built-by"])
	}
}

func TestMount_DisabledAndEnabled(t *testing.T) {
	off := chi.NewRouter()
	Mount(phttp.AdaptChi(off), config.New(), false)
	rec := httptest.NewRecorder()
	off.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs code = %d", rec.Code)
	}

	on := chi.NewRouter()
	Mount(phttp.AdaptChi(on), config.New(), true)
	rec = httptest.NewRecorder()
	on.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect code = %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	on.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json code = %d", rec.Code)
	}
}
