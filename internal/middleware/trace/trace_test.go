package trace

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	applog "fintrack/internal/log"
)

type recordedCall struct {
	method, route string
	status        int
}

type fakeObserver struct {
	calls []recordedCall
}

func (f *fakeObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.calls = append(f.calls, recordedCall{method, route, status})
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if !strings.HasPrefix(a, "req_") || len(a) != len("req_")+16 {
		t.Errorf("unexpected id format %q", a)
	}
	if a == b {
		t.Error("request ids should differ")
	}
}

func TestMiddlewareObservesRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	logger := applog.New(applog.Config{Format: applog.FormatJSON, Output: &buf})
	obs := &fakeObserver{}

	var seenID string
	r := chi.NewRouter()
	r.Use(NewMiddleware(logger, obs).Middleware)
	r.Delete("/api/income/{id}", func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/income/abc", nil))

	if len(obs.calls) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(obs.calls))
	}
	got := obs.calls[0]
	if got.route != "/api/income/{id}" || got.status != http.StatusNotFound || got.method != http.MethodDelete {
		t.Errorf("unexpected observation %+v", got)
	}
	if seenID == "" || rec.Header().Get(RequestIDHeader) != seenID {
		t.Errorf("request id not propagated: ctx=%q header=%q", seenID, rec.Header().Get(RequestIDHeader))
	}
	if !strings.Contains(buf.String(), "HTTP request completed") {
		t.Error("completion should be logged")
	}
}

func TestMiddlewareDefaultsToOK(t *testing.T) {
	logger := applog.New(applog.Config{Output: &bytes.Buffer{}})
	obs := &fakeObserver{}

	h := NewMiddleware(logger, obs).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if obs.calls[0].status != http.StatusOK || obs.calls[0].route != "unmatched" {
		t.Errorf("unexpected observation %+v", obs.calls[0])
	}
}
