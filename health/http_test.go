package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newAggWith(results map[string]Result) *Aggregator {
	agg := NewAggregator()
	for name, result := range results {
		agg.Register(NewCheckerFunc(name, func(context.Context) Result {
			return result
		}))
	}
	return agg
}

// TestLivenessHandler tests the liveness probe.
func TestLivenessHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "OK")
	}
}

// TestReadinessHandler tests status-code mapping for readiness.
func TestReadinessHandler(t *testing.T) {
	tests := []struct {
		name     string
		results  map[string]Result
		wantCode int
		wantBody string
	}{
		{"healthy", map[string]Result{"cache": Healthy("ok")}, http.StatusOK, "OK"},
		{"degraded", map[string]Result{"cache": Degraded("slow")}, http.StatusOK, "DEGRADED"},
		{"unhealthy", map[string]Result{"cache": Unhealthy("down", nil)}, http.StatusServiceUnavailable, "UNHEALTHY"},
		{"no checks", map[string]Result{}, http.StatusOK, "OK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ReadinessHandler(newAggWith(tt.results))(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

// TestDetailedHandler tests the JSON health breakdown.
func TestDetailedHandler(t *testing.T) {
	agg := newAggWith(map[string]Result{
		"cache":    Healthy("round-trip ok"),
		"backends": Unhealthy("redis unreachable", errors.New("connection refused")),
	})

	rec := httptest.NewRecorder()
	DetailedHandler(agg)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("overall status = %q, want %q", resp.Status, "unhealthy")
	}
	if len(resp.Checks) != 2 {
		t.Fatalf("checks = %v, want 2 entries", resp.Checks)
	}
	if resp.Checks["cache"].Status != "healthy" {
		t.Errorf("cache check = %+v", resp.Checks["cache"])
	}
	if resp.Checks["backends"].Error == "" {
		t.Error("failed check lost its error message")
	}
}

// TestSingleCheckHandler tests per-check endpoints.
func TestSingleCheckHandler(t *testing.T) {
	agg := newAggWith(map[string]Result{"cache": Healthy("ok")})

	rec := httptest.NewRecorder()
	SingleCheckHandler(agg, "cache")(rec, httptest.NewRequest(http.MethodGet, "/health/cache", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	SingleCheckHandler(agg, "missing")(rec, httptest.NewRequest(http.MethodGet, "/health/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status for missing checker = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

// TestRegisterHandlers tests that the standard endpoints are routed.
func TestRegisterHandlers(t *testing.T) {
	mux := http.NewServeMux()
	RegisterHandlers(mux, newAggWith(map[string]Result{"cache": Healthy("ok")}))

	for _, path := range []string{"/healthz", "/readyz", "/health"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}
