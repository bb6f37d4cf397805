// Command mock-backend runs a deterministic OpenAI-compatible Chat
// Completions server for offline development. It parses the preference
// summary out of the system prompt and returns canned movie
// recommendations keyed by genre, so the full recommendation flow can be
// exercised without a Groq account:
//
//	MOODREEL_GROQ_BASE_URL=http://localhost:9090/v1 GROQ_API_KEY=dev go run ./cmd/server
//
// Certain moods trigger failure modes for testing: a mood containing
// "ratelimit" returns HTTP 429, "unavailable" returns HTTP 503, and
// "empty" returns a completion with no content.
//
// Configuration:
//
//	MOCK_PORT - Listen port (default: 9090)
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

func main() {
	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "9090"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", handleChatCompletions)
	mux.HandleFunc("GET /v1/models", handleModels)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	srv := &http.Server{Addr: ":" + port, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("mock backend starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("mock backend failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("mock backend shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

// --- Request types ---

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- Response types ---

type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int     `json:"index"`
	Message      chatMsg `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type chatMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// --- Handler ---

func handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", "invalid_request_error")
		return
	}

	if req.Stream {
		writeError(w, http.StatusBadRequest, "streaming is not supported", "invalid_request_error")
		return
	}

	prefs := parsePreferences(&req)

	// Failure-mode triggers keyed off the mood.
	mood := strings.ToLower(prefs.mood)
	switch {
	case strings.Contains(mood, "ratelimit"):
		writeError(w, http.StatusTooManyRequests, "rate limit reached for model", "rate_limit_error")
		return
	case strings.Contains(mood, "unavailable"):
		writeError(w, http.StatusServiceUnavailable, "model is overloaded", "service_unavailable_error")
		return
	}

	text := ""
	if !strings.Contains(mood, "empty") {
		text = recommendationsFor(prefs)
	}

	model := req.Model
	if model == "" {
		model = "mock-model"
	}

	prompt := 0
	for _, m := range req.Messages {
		prompt += len(strings.Fields(m.Content))
	}
	completion := len(strings.Fields(text))

	resp := chatResponse{
		ID:      "chatcmpl-mock",
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   model,
		Choices: []chatChoice{
			{
				Index:        0,
				Message:      chatMsg{Role: "assistant", Content: text},
				FinishReason: "stop",
			},
		},
		Usage: chatUsage{
			PromptTokens:     prompt,
			CompletionTokens: completion,
			TotalTokens:      prompt + completion,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, message, errType string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": message,
			"type":    errType,
		},
	})
}

// --- Canned recommendations ---

// preferences holds the fields parsed back out of the system prompt.
type preferences struct {
	mood     string
	genres   string
	language string
	platform string
}

// parsePreferences recovers the user preferences from the system prompt
// that the recommendation service embeds them in.
func parsePreferences(req *chatRequest) preferences {
	var system string
	for _, m := range req.Messages {
		if m.Role == "system" {
			system = m.Content
			break
		}
	}

	return preferences{
		mood:     extractBetween(system, "user's mood: ", ", preferred genres:"),
		genres:   extractBetween(system, "preferred genres: ", ", language:"),
		language: extractBetween(system, "language: ", ", and available streaming platform:"),
		platform: extractBetween(system, "streaming platform: ", ", recommend"),
	}
}

// extractBetween returns the substring of s between start and end, or ""
// when either marker is missing.
func extractBetween(s, start, end string) string {
	_, after, ok := strings.Cut(s, start)
	if !ok {
		return ""
	}
	value, _, ok := strings.Cut(after, end)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// recommendationsFor picks a canned list by the first recognized genre and
// fills in the user's platform so the output reads as tailored.
func recommendationsFor(prefs preferences) string {
	platform := prefs.platform
	if platform == "" {
		platform = "your platform"
	}

	genres := strings.ToLower(prefs.genres)
	var picks []pick
	switch {
	case strings.Contains(genres, "sci"):
		picks = sciFiPicks
	case strings.Contains(genres, "action"):
		picks = actionPicks
	case strings.Contains(genres, "comedy"):
		picks = comedyPicks
	case strings.Contains(genres, "horror"):
		picks = horrorPicks
	case strings.Contains(genres, "romance"):
		picks = romancePicks
	default:
		picks = dramaPicks
	}

	var b strings.Builder
	b.WriteString("Here are some recommendations for you:\n")
	for _, p := range picks {
		fmt.Fprintf(&b, "\n- %s (%d)\n  %s\n  %s Available on %s.\n", p.title, p.year, p.description, p.match, platform)
	}
	return b.String()
}

type pick struct {
	title       string
	year        int
	description string
	match       string
}

var sciFiPicks = []pick{
	{"Blade Runner 2049", 2017, "A young blade runner unearths a secret that could plunge society into chaos. Visually stunning and deliberately paced.", "A strong match for your genre picks with plenty of atmosphere for your mood."},
	{"Arrival", 2016, "A linguist races to decode an alien language before tensions spiral. Thoughtful science fiction built around communication.", "Cerebral but emotional, it suits the evening you described."},
	{"Dune", 2021, "A noble family is betrayed on a desert planet that holds the galaxy's most precious resource. Epic in scale and sound.", "Big-canvas sci-fi that rewards a full sitting."},
}

var actionPicks = []pick{
	{"Mad Max: Fury Road", 2015, "A drifter and a rebel lieutenant flee a warlord across the wasteland in one long chase. Relentless practical stunt work.", "Pure momentum for an energetic mood."},
	{"John Wick", 2014, "A retired hitman returns for revenge after losing the last gift from his wife. Lean plot, precise choreography.", "Stylish action that never drags."},
	{"The Dark Knight", 2008, "Batman faces an anarchist mastermind who wants to watch Gotham burn. A crime saga wearing a cape.", "Action with weight, matching your genre picks."},
}

var comedyPicks = []pick{
	{"The Grand Budapest Hotel", 2014, "A concierge and his lobby boy are swept into a caper around a stolen painting. Whimsical, fast, and visually delightful.", "Light and witty, a clean fit for your mood."},
	{"Game Night", 2018, "A competitive couple's game night turns into a real kidnapping plot. Sharper than it has any right to be.", "A crowd-pleaser that keeps the energy up."},
	{"Paddington 2", 2017, "A polite bear hunts for the perfect present and ends up in prison, where he wins everyone over. Warm and funny throughout.", "Feel-good comfort for the whole household."},
}

var horrorPicks = []pick{
	{"Get Out", 2017, "A visit to his girlfriend's family estate turns sinister for a young photographer. Horror with a sharp social edge.", "Tense and smart, matching the mood you set."},
	{"A Quiet Place", 2018, "A family survives in silence among creatures that hunt by sound. Almost wordless and wound tight.", "Lean suspense that rewards a dark room."},
	{"Hereditary", 2018, "A family unravels after the death of its secretive matriarch. Slow dread that builds to a ferocious finish.", "For a mood that wants to be unsettled."},
}

var romancePicks = []pick{
	{"About Time", 2013, "A young man uses time travel to fix his love life and learns to live each day. Gentle and quietly devastating.", "Romantic with real warmth for your mood."},
	{"Pride & Prejudice", 2005, "Elizabeth Bennet spars with the proud Mr. Darcy in Austen's classic. Lush and briskly paced.", "A sweeping match for your genre picks."},
	{"La La Land", 2016, "An actress and a jazz pianist chase their dreams in Los Angeles. A musical about timing and ambition.", "Bittersweet romance with style to spare."},
}

var dramaPicks = []pick{
	{"The Shawshank Redemption", 1994, "A banker maintains hope through decades in prison. Patient storytelling with an unmatched payoff.", "A dependable pick whatever the mood."},
	{"Whiplash", 2014, "A young drummer collides with a ruthless teacher at a cutthroat conservatory. Ninety minutes of pressure.", "Intense and focused, it fits a driven mood."},
	{"Parasite", 2019, "A poor family schemes its way into the service of a wealthy one. Funny until it absolutely is not.", "A modern classic that matches adventurous picks."},
}

// --- Models endpoint ---

func handleModels(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"object": "list",
		"data": []map[string]any{
			{"id": "llama-3.3-70b-versatile", "object": "model", "owned_by": "moodreel-mock"},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
