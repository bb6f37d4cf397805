package integration

import (
	"net/http"
	"strings"
	"testing"

	"github.com/moodreel/moodreel/pkg/api"
)

func TestHealthEndpoint(t *testing.T) {
	resp := getURL(t, testEnv.BaseURL()+"/health")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	var health api.HealthStatus
	decodeJSON(t, resp, &health)

	if health.Status != "healthy" {
		t.Errorf("status = %q, want %q", health.Status, "healthy")
	}
	if !health.LLMInitialized {
		t.Error("llm_initialized = false, want true")
	}
	if health.Provider != "groq" {
		t.Errorf("provider = %q, want %q", health.Provider, "groq")
	}
}

func TestRootEndpoint(t *testing.T) {
	resp := getURL(t, testEnv.BaseURL()+"/")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	var info api.APIInfo
	decodeJSON(t, resp, &info)

	if info.Message != "Movie Recommendation API" {
		t.Errorf("message = %q, want %q", info.Message, "Movie Recommendation API")
	}
	if info.Version != api.Version {
		t.Errorf("version = %q, want %q", info.Version, api.Version)
	}
	if info.Endpoints["recommend"] == "" {
		t.Error("endpoints missing 'recommend'")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	// Make a recommendation first so both the HTTP and the provider
	// counters have samples.
	rec := postJSON(t, testEnv.BaseURL()+"/api/recommend", recommendRequest())
	rec.Body.Close()

	resp := getURL(t, testEnv.BaseURL()+"/metrics")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := readBody(t, resp)
	if !strings.Contains(body, "moodreel_requests_total") {
		t.Error("metrics output missing moodreel_requests_total")
	}
	if !strings.Contains(body, "moodreel_provider_requests_total") {
		t.Error("metrics output missing moodreel_provider_requests_total")
	}
}
