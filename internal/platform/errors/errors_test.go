package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeTable(t *testing.T) {
	cases := []struct {
		code   ErrorCode
		name   string
		status int
	}{
		{ErrorCodeUnknown, "unknown", http.StatusInternalServerError},
		{ErrorCodePanic, "panic", http.StatusInternalServerError},
		{ErrorCodeUnavailable, "unavailable", http.StatusServiceUnavailable},
		{ErrorCodeTooManyRequests, "too_many_requests", http.StatusTooManyRequests},
		{ErrorCodeConflict, "conflict", http.StatusConflict},
		{ErrorCodeForbidden, "forbidden", http.StatusForbidden},
		{ErrorCodeInvalidArgument, "invalid_argument", http.StatusUnprocessableEntity},
		{ErrorCodeValidation, "validation", http.StatusBadRequest},
		{ErrorCodeNotFound, "not_found", http.StatusNotFound},
		{ErrorCodeDuplicateKey, "duplicate_key", http.StatusConflict},
		{ErrorCodeDB, "db", http.StatusInternalServerError},
		{ErrorCode(999), "code_999", http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := c.code.String(); got != c.name {
			t.Fatalf("String(%d) = %q, want %q", c.code, got, c.name)
		}
		if got := HTTPStatusCode(c.code); got != c.status {
			t.Fatalf("HTTPStatusCode(%s) = %d, want %d", c.name, got, c.status)
		}
	}
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
		msg  string
	}{
		{NotFoundf("no offering under %q", "S24 04"), ErrorCodeNotFound, `no offering under "S24 04"`},
		{InvalidArgf("course code %q has no subject", " 101"), ErrorCodeInvalidArgument, `course code " 101" has no subject`},
		{Conflictf("catalog already loaded"), ErrorCodeConflict, "catalog already loaded"},
		{Unavailablef("catalog not loaded"), ErrorCodeUnavailable, "catalog not loaded"},
		{DBf("scan row %d", 3), ErrorCodeDB, "scan row 3"},
		{PanicErrf("boom"), ErrorCodePanic, "boom"},
		{Internalf("x"), ErrorCodeUnknown, "x"},
		{New(ErrorCodeValidation, "page_size must be at most 200"), ErrorCodeValidation, "page_size must be at most 200"},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) {
			t.Fatalf("%q: code = %s, want %s", c.err, CodeOf(c.err), c.code)
		}
		if c.err.Error() != c.msg {
			t.Fatalf("Error() = %q, want %q", c.err.Error(), c.msg)
		}
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrs.New("open dvc-schedule.csv: no such file")
	err := Wrapf(cause, ErrorCodeUnavailable, "read %s", "schedule")
	if err.Error() != "read schedule: open dvc-schedule.csv: no such file" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !stderrs.Is(err, cause) || Root(err) != cause {
		t.Fatalf("cause lost")
	}
	if WrapIf(nil, ErrorCodeDB, "x") != nil {
		t.Fatalf("WrapIf(nil) should stay nil")
	}
	if !IsCode(WrapIf(cause, ErrorCodeDB, "x"), ErrorCodeDB) {
		t.Fatalf("WrapIf code lost")
	}
}

func TestLabelsCopy(t *testing.T) {
	base := NotFoundf("no instructor matches")
	named := WithOp(WithField(base, "name"), "catalog.search")

	e, ok := As(named)
	if !ok || e.Field() != "name" || e.Op() != "catalog.search" {
		t.Fatalf("labels = %+v", e)
	}
	if b, _ := As(base); b.Field() != "" || b.Op() != "" {
		t.Fatalf("original mutated: %+v", b)
	}

	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain || WithOp(plain, "x") != plain {
		t.Fatalf("foreign errors should pass through")
	}
	adopted := WithFieldChain(plain, "path")
	if w := WireFrom(adopted); w.Code != ErrorCodeUnknown || w.Field != "path" || w.Message != "plain" {
		t.Fatalf("adopted wire = %+v", w)
	}
	if !stderrs.Is(adopted, plain) {
		t.Fatalf("adopted error lost its cause")
	}
}

func TestOutermostWins(t *testing.T) {
	inner := NotFoundf("inner")
	outer := Wrap(fmt.Errorf("ctx: %w", inner), ErrorCodeUnavailable, "outer")
	if CodeOf(outer) != ErrorCodeUnavailable || HTTPStatus(outer) != http.StatusServiceUnavailable {
		t.Fatalf("outer code = %s", CodeOf(outer))
	}
	if CodeOf(fmt.Errorf("wrapped: %w", inner)) != ErrorCodeNotFound {
		t.Fatalf("fmt wrapping hid the code")
	}
}

func TestWireFrom(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("nil wire = %+v", w)
	}
	if w := WireFrom(stderrs.New("raw")); w.Code != ErrorCodeUnknown || w.Message != "raw" {
		t.Fatalf("foreign wire = %+v", w)
	}
	w := WireFrom(WithField(Newf(ErrorCodeValidation, "bad"), "page"))
	if w.Code != ErrorCodeValidation || w.Field != "page" || w.Message != "bad" {
		t.Fatalf("wire = %+v", w)
	}
	if HTTPStatus(stderrs.New("raw")) != http.StatusInternalServerError {
		t.Fatalf("foreign status")
	}
}

func TestNilReceiver(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil Error() = %q", e.Error())
	}
}
