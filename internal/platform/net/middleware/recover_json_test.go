package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "coursedex/internal/platform/errors"
	"coursedex/internal/platform/net/middleware"
	"coursedex/internal/platform/testkit"
)

func TestRecoverJSON_WritesEnvelope(t *testing.T) {
	h := middleware.RequestID()(middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("index exploded")
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/conflicts", nil)
	req.Header.Set("X-Request-ID", "req-9")
	rr := httptest.NewRecorder()
	testkit.MustNotPanic(t, func() { h.ServeHTTP(rr, req) })

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") != "req-9" {
		t.Fatalf("X-Request-ID = %q", rr.Header().Get("X-Request-ID"))
	}
	var body struct {
		StatusCode int            `json:"status_code"`
		Code       perr.ErrorCode `json:"code"`
		RequestID  string         `json:"request_id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.StatusCode != 500 || body.Code != perr.ErrorCodePanic || body.RequestID != "req-9" {
		t.Fatalf("body = %+v", body)
	}
}

func TestRecoverJSON_RepanicsAbortHandler(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	testkit.MustPanic(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
