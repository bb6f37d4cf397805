package flow

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt(t *testing.T) {
	state := NewState(testRequest())

	got := BuildSystemPrompt(state)

	want := "You are an intelligent movie recommendation agent. " +
		"Based on the user's mood: adventurous, preferred genres: action, sci-fi, " +
		"language: English, and available streaming platform: Netflix, " +
		"recommend suitable movies available on that platform. " +
		"Provide 3-5 specific movie recommendations with:\n" +
		"1. Movie title and year\n" +
		"2. Brief description (2-3 sentences)\n" +
		"3. Why it matches their preferences\n" +
		"Format each recommendation clearly with bullet points."

	if got != want {
		t.Errorf("BuildSystemPrompt() = %q, want %q", got, want)
	}
}

func TestBuildSystemPromptContainsAllPreferences(t *testing.T) {
	state := NewState(testRequest())
	state.Mood = "nostalgic"
	state.Genres = []string{"animation"}
	state.Language = "Japanese"
	state.Platform = "Crunchyroll"

	got := BuildSystemPrompt(state)

	for _, fragment := range []string{
		"mood: nostalgic",
		"genres: animation",
		"language: Japanese",
		"platform: Crunchyroll",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("prompt missing %q:\n%s", fragment, got)
		}
	}
}
