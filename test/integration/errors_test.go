package integration

import (
	"net/http"
	"testing"

	"github.com/moodreel/moodreel/pkg/api"
)

// The mock backend turns trigger words in the mood into failure modes, so
// these tests exercise the full error path from backend to API envelope.

func TestUpstreamRateLimitSurfaces(t *testing.T) {
	body := recommendRequest()
	body["mood"] = "ratelimit please"

	resp := postJSON(t, testEnv.BaseURL()+"/api/recommend", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusTooManyRequests {
		b := readBody(t, resp)
		t.Fatalf("expected 429, got %d: %s", resp.StatusCode, b)
	}

	var errResp api.ErrorResponse
	decodeJSON(t, resp, &errResp)

	if errResp.Error == nil {
		t.Fatal("error object is nil")
	}
	if errResp.Error.Type != api.ErrorTypeTooManyRequests {
		t.Errorf("error.type = %q, want %q", errResp.Error.Type, api.ErrorTypeTooManyRequests)
	}
	if errResp.Error.Message == "" {
		t.Error("error.message is empty, want backend message passed through")
	}
}

func TestUpstreamServerErrorSurfaces(t *testing.T) {
	body := recommendRequest()
	body["mood"] = "unavailable today"

	resp := postJSON(t, testEnv.BaseURL()+"/api/recommend", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		b := readBody(t, resp)
		t.Fatalf("expected 500, got %d: %s", resp.StatusCode, b)
	}

	var errResp api.ErrorResponse
	decodeJSON(t, resp, &errResp)

	if errResp.Error == nil {
		t.Fatal("error object is nil")
	}
	if errResp.Error.Type != api.ErrorTypeModelError {
		t.Errorf("error.type = %q, want %q", errResp.Error.Type, api.ErrorTypeModelError)
	}
}

func TestEmptyCompletionFails(t *testing.T) {
	body := recommendRequest()
	body["mood"] = "empty inside"

	resp := postJSON(t, testEnv.BaseURL()+"/api/recommend", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		b := readBody(t, resp)
		t.Fatalf("expected 500, got %d: %s", resp.StatusCode, b)
	}

	var errResp api.ErrorResponse
	decodeJSON(t, resp, &errResp)

	if errResp.Error == nil {
		t.Fatal("error object is nil")
	}
	if errResp.Error.Message != "Failed to generate recommendations" {
		t.Errorf("error.message = %q, want %q", errResp.Error.Message, "Failed to generate recommendations")
	}
}
