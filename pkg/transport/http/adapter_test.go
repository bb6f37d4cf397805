package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/moodreel/moodreel/pkg/api"
	"github.com/moodreel/moodreel/pkg/transport"
)

// mockRecommender is a configurable Recommender for testing.
type mockRecommender struct {
	resp    *api.RecommendationResponse
	err     error
	lastReq *api.RecommendationRequest
}

func (m *mockRecommender) Recommend(ctx context.Context, req *api.RecommendationRequest) (*api.RecommendationResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.resp != nil {
		return m.resp, nil
	}
	return &api.RecommendationResponse{
		Recommendations: "1. Blade Runner 2049\n2. Dune",
		Preferences:     req.Preferences(),
	}, nil
}

func newTestAdapter(rec transport.Recommender) *Adapter {
	return NewAdapter(rec, DefaultConfig())
}

func validRequest() api.RecommendationRequest {
	return api.RecommendationRequest{
		Mood:     "adventurous",
		Genres:   []string{"action", "sci-fi"},
		Language: "English",
		Platform: "Netflix",
	}
}

func postJSON(t *testing.T, srv *httptest.Server, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	resp, err := http.Post(srv.URL+"/api/recommend", "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	return resp
}

func decodeError(t *testing.T, resp *http.Response) *api.APIError {
	t.Helper()
	var envelope api.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error == nil {
		t.Fatal("error envelope has no error object")
	}
	return envelope.Error
}

func TestRecommendReturnsJSON(t *testing.T) {
	rec := &mockRecommender{}
	adapter := newTestAdapter(rec)
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp := postJSON(t, srv, validRequest())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var got api.RecommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Recommendations == "" {
		t.Error("recommendations are empty")
	}
	if got.Preferences.Mood != "adventurous" {
		t.Errorf("preferences.mood = %q, want %q", got.Preferences.Mood, "adventurous")
	}
	if len(got.Preferences.Genres) != 2 {
		t.Errorf("preferences.genres has %d entries, want 2", len(got.Preferences.Genres))
	}

	if rec.lastReq == nil {
		t.Fatal("recommender was not called")
	}
	if rec.lastReq.Platform != "Netflix" {
		t.Errorf("recommender saw platform %q, want %q", rec.lastReq.Platform, "Netflix")
	}
}

func TestRecommendEmptyGenresReturns400(t *testing.T) {
	rec := &mockRecommender{}
	adapter := newTestAdapter(rec)
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	req := validRequest()
	req.Genres = nil
	resp := postJSON(t, srv, req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	apiErr := decodeError(t, resp)
	if apiErr.Type != api.ErrorTypeInvalidRequest {
		t.Errorf("error type = %q, want %q", apiErr.Type, api.ErrorTypeInvalidRequest)
	}
	if apiErr.Param != "genres" {
		t.Errorf("error param = %q, want %q", apiErr.Param, "genres")
	}
	if apiErr.Message != "At least one genre must be selected" {
		t.Errorf("error message = %q, want %q", apiErr.Message, "At least one genre must be selected")
	}

	if rec.lastReq != nil {
		t.Error("recommender was called despite validation failure")
	}
}

func TestRecommendMissingMoodReturns400(t *testing.T) {
	adapter := newTestAdapter(&mockRecommender{})
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	req := validRequest()
	req.Mood = "   "
	resp := postJSON(t, srv, req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if apiErr := decodeError(t, resp); apiErr.Param != "mood" {
		t.Errorf("error param = %q, want %q", apiErr.Param, "mood")
	}
}

func TestInvalidJSONBodyReturns400(t *testing.T) {
	adapter := newTestAdapter(&mockRecommender{})
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/recommend", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if apiErr := decodeError(t, resp); !strings.HasPrefix(apiErr.Message, "invalid JSON") {
		t.Errorf("error message = %q, want prefix %q", apiErr.Message, "invalid JSON")
	}
}

func TestWrongContentTypeReturns415(t *testing.T) {
	adapter := newTestAdapter(&mockRecommender{})
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/recommend", "text/plain", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnsupportedMediaType)
	}
}

func TestContentTypeWithCharsetAccepted(t *testing.T) {
	adapter := newTestAdapter(&mockRecommender{})
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	data, _ := json.Marshal(validRequest())
	resp, err := http.Post(srv.URL+"/api/recommend", "application/json; charset=utf-8", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestBodyTooLargeReturns413(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBodySize = 64
	adapter := NewAdapter(&mockRecommender{}, cfg)
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	req := validRequest()
	req.Mood = strings.Repeat("x", 200)
	data, _ := json.Marshal(req)
	resp, err := http.Post(srv.URL+"/api/recommend", "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusRequestEntityTooLarge)
	}
}

func TestRecommenderAPIErrorKeepsStatus(t *testing.T) {
	rec := &mockRecommender{err: api.NewTooManyRequestsError("Rate limit reached for model")}
	adapter := newTestAdapter(rec)
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp := postJSON(t, srv, validRequest())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusTooManyRequests)
	}
	if apiErr := decodeError(t, resp); apiErr.Type != api.ErrorTypeTooManyRequests {
		t.Errorf("error type = %q, want %q", apiErr.Type, api.ErrorTypeTooManyRequests)
	}
}

func TestRecommenderGenericErrorReturns500(t *testing.T) {
	rec := &mockRecommender{err: errors.New("backend exploded")}
	adapter := newTestAdapter(rec)
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp := postJSON(t, srv, validRequest())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}
	if apiErr := decodeError(t, resp); apiErr.Type != api.ErrorTypeServerError {
		t.Errorf("error type = %q, want %q", apiErr.Type, api.ErrorTypeServerError)
	}
}

func TestHealthEndpoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProviderName = "groq"
	adapter := NewAdapter(&mockRecommender{}, cfg)
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var got api.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Status != "healthy" {
		t.Errorf("status = %q, want %q", got.Status, "healthy")
	}
	if !got.LLMInitialized {
		t.Error("llm_initialized = false, want true")
	}
	if got.Provider != "groq" {
		t.Errorf("provider = %q, want %q", got.Provider, "groq")
	}
}

func TestHealthWithoutProvider(t *testing.T) {
	adapter := newTestAdapter(&mockRecommender{})
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	var got api.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.LLMInitialized {
		t.Error("llm_initialized = true, want false")
	}
}

func TestRootEndpoint(t *testing.T) {
	adapter := newTestAdapter(&mockRecommender{})
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var got api.APIInfo
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Message != "Movie Recommendation API" {
		t.Errorf("message = %q, want %q", got.Message, "Movie Recommendation API")
	}
	if got.Endpoints["recommend"] == "" {
		t.Error("endpoints map is missing recommend")
	}
}

func TestRootDoesNotMatchOtherPaths(t *testing.T) {
	adapter := newTestAdapter(&mockRecommender{})
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	adapter := newTestAdapter(&mockRecommender{})
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "go_") {
		t.Error("metrics exposition is missing runtime metrics")
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Metrics = false
	adapter := NewAdapter(&mockRecommender{}, cfg)
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestClientRequestIDEchoed(t *testing.T) {
	adapter := newTestAdapter(&mockRecommender{})
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	data, _ := json.Marshal(validRequest())
	req, err := http.NewRequest("POST", srv.URL+"/api/recommend", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("new request error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "client-id-42")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	defer resp.Body.Close()

	if id := resp.Header.Get("X-Request-ID"); id != "client-id-42" {
		t.Errorf("X-Request-ID = %q, want %q", id, "client-id-42")
	}
}

func TestGetOnRecommendReturns405(t *testing.T) {
	adapter := newTestAdapter(&mockRecommender{})
	srv := httptest.NewServer(adapter.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/recommend")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusMethodNotAllowed)
	}
}
