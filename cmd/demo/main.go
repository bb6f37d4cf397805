// Command demo walks the recommendation pipeline offline using the mock
// provider. It prints the transcript the steps build, the system prompt
// the suggestion step sends, and the final response JSON. No network I/O.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/moodreel/moodreel/pkg/api"
	"github.com/moodreel/moodreel/pkg/engine"
	"github.com/moodreel/moodreel/pkg/flow"
	"github.com/moodreel/moodreel/pkg/provider/mock"
)

func main() {
	fmt.Println("=== moodreel recommendation pipeline demo ===")
	fmt.Println()

	ctx := context.Background()

	// 1. Build a recommendation request
	req := &api.RecommendationRequest{
		Mood:     "adventurous",
		Genres:   []string{"action", "sci-fi"},
		Language: "English",
		Platform: "Netflix",
	}

	// 2. Validate request
	if err := api.ValidateRecommendationRequest(req, api.DefaultValidationConfig()); err != nil {
		fmt.Printf("Validation FAILED: %v\n", err)
		return
	}
	fmt.Println("[1] Request validated successfully")

	data, _ := json.MarshalIndent(req, "", "  ")
	fmt.Printf("\n[2] Request JSON:\n%s\n", data)

	// 3. Walk the pipeline against the mock provider
	prov := mock.New()
	defer prov.Close()

	pipeline := flow.New(prov, flow.Sampling{Model: engine.DefaultModel})
	fmt.Printf("\n[3] Pipeline steps: %v\n", pipeline.StepNames())

	state := flow.NewState(req)
	if err := pipeline.Run(ctx, state); err != nil {
		fmt.Printf("Pipeline FAILED: %v\n", err)
		return
	}

	fmt.Println("\n[4] Transcript after the run:")
	for i, msg := range state.Messages {
		fmt.Printf("    %d. [%s] %s\n", i+1, msg.Role, firstLine(msg.Content))
	}

	// 4. The prompt the suggestion step sent
	fmt.Printf("\n[5] System prompt:\n%s\n", flow.BuildSystemPrompt(state))
	fmt.Printf("\n    Closing human turn: %q\n", flow.SuggestTurn)

	// 5. Full engine run producing the API response
	eng, err := engine.New(prov, engine.Config{})
	if err != nil {
		fmt.Printf("Engine setup FAILED: %v\n", err)
		return
	}

	resp, err := eng.Recommend(ctx, req)
	if err != nil {
		fmt.Printf("Recommendation FAILED: %v\n", err)
		return
	}

	data, _ = json.MarshalIndent(resp, "", "  ")
	fmt.Printf("\n[6] Response JSON:\n%s\n", data)
	fmt.Printf("\n    Tokens: %d in / %d out / %d total\n",
		state.Usage.PromptTokens, state.Usage.CompletionTokens, state.Usage.TotalTokens)

	// 6. Validation error demo
	fmt.Println("\n[7] Validation error examples:")
	noGenres := &api.RecommendationRequest{Mood: "happy", Language: "English", Platform: "Hulu"}
	if err := api.ValidateRecommendationRequest(noGenres, api.DefaultValidationConfig()); err != nil {
		fmt.Printf("    Empty genres: %v\n", err)
	}

	noMood := &api.RecommendationRequest{Genres: []string{"drama"}, Language: "English", Platform: "Hulu"}
	if err := api.ValidateRecommendationRequest(noMood, api.DefaultValidationConfig()); err != nil {
		fmt.Printf("    Missing mood: %v\n", err)
	}

	// 7. Upstream failure demo
	fmt.Println("\n[8] Upstream failure handling:")
	broken := mock.New()
	broken.Err = errors.New("connection refused")
	failEng, _ := engine.New(broken, engine.Config{})
	if _, err := failEng.Recommend(ctx, req); err != nil {
		fmt.Printf("    Backend down: %v\n", err)
	}

	fmt.Println("\n=== demo complete ===")
}

// firstLine truncates a transcript entry to its first line for display.
func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i] + " ..."
		}
	}
	return s
}
