package flow

import (
	"fmt"
	"strings"
)

// SuggestTurn is the human turn sent alongside the system prompt in the
// completion request.
const SuggestTurn = "Suggest movies for me to watch."

// BuildSystemPrompt formats the recommendation instruction for the model
// from the preferences carried in the state.
func BuildSystemPrompt(state *State) string {
	return fmt.Sprintf(
		"You are an intelligent movie recommendation agent. "+
			"Based on the user's mood: %s, preferred genres: %s, "+
			"language: %s, and available streaming platform: %s, "+
			"recommend suitable movies available on that platform. "+
			"Provide 3-5 specific movie recommendations with:\n"+
			"1. Movie title and year\n"+
			"2. Brief description (2-3 sentences)\n"+
			"3. Why it matches their preferences\n"+
			"Format each recommendation clearly with bullet points.",
		state.Mood,
		strings.Join(state.Genres, ", "),
		state.Language,
		state.Platform,
	)
}
