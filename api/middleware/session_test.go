package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestSessionMintsIDWhenAbsent(t *testing.T) {
	t.Parallel()

	var seen string
	handler := Session(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if seen == "" {
		t.Fatalf("expected a session id in context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected a uuid session id, got %q", seen)
	}
	if got := rec.Header().Get("X-Session-Id"); got != seen {
		t.Fatalf("header %q does not match context %q", got, seen)
	}
}

func TestSessionEchoesExistingID(t *testing.T) {
	t.Parallel()

	var seen string
	handler := Session(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Session-Id", "sess-abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "sess-abc" {
		t.Fatalf("expected existing session id, got %q", seen)
	}
	if got := rec.Header().Get("X-Session-Id"); got != "sess-abc" {
		t.Fatalf("expected echoed header, got %q", got)
	}
}

func TestSessionIDFromContextMissing(t *testing.T) {
	t.Parallel()

	if got := SessionIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %q", got)
	}
}
