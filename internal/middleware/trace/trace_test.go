package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMiddlewareAssignsRequestID(t *testing.T) {
	var id string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		id = GetRequestID(r.Context())
	})

	m := NewMiddleware(func(*http.Request) string { return "203.0.113.7" })
	req := httptest.NewRequest(http.MethodGet, "/api/income/", nil)
	m.Middleware(next).ServeHTTP(httptest.NewRecorder(), req)

	if !strings.HasPrefix(id, "req_") {
		t.Fatalf("request id = %q, want req_ prefix", id)
	}
}

func TestGetRequestIDMissing(t *testing.T) {
	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("expected empty id on a bare context, got %q", id)
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	if a == b {
		t.Fatalf("consecutive ids collided: %q", a)
	}
	if !strings.HasPrefix(a, "req_") || !strings.HasPrefix(b, "req_") {
		t.Errorf("ids missing req_ prefix: %q %q", a, b)
	}
}
