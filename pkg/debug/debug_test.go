package debug

import (
	"log/slog"
	"testing"
)

// setCategories swaps the active category set for one test.
func setCategories(t *testing.T, list string) {
	t.Helper()
	orig := enabled
	t.Cleanup(func() { enabled = orig })
	enabled = parseCategories(list)
}

func TestParseCategories(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "flow", []string{"flow"}},
		{"multiple", "providers,engine,flow", []string{"providers", "engine", "flow"}},
		{"spaces and case", " Providers , ENGINE ", []string{"providers", "engine"}},
		{"empty segments", "flow,,transport", []string{"flow", "transport"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCategories(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseCategories(%q) has %d entries, want %d", tt.input, len(got), len(tt.want))
			}
			for _, cat := range tt.want {
				if !got[cat] {
					t.Errorf("parseCategories(%q) missing %q", tt.input, cat)
				}
			}
		})
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		name     string
		list     string
		category string
		want     bool
	}{
		{"listed", "providers,engine", "providers", true},
		{"second listed", "providers,engine", "engine", true},
		{"not listed", "providers,engine", "flow", false},
		{"all matches everything", "all", "anything", true},
		{"nothing set", "", "providers", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setCategories(t, tt.list)
			if got := Enabled(tt.category); got != tt.want {
				t.Errorf("Enabled(%q) with %q = %v, want %v", tt.category, tt.list, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"TRACE", LevelTrace},
		{"trace", LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("mood", 10); got != "mood" {
		t.Errorf("Truncate below limit = %q, want input unchanged", got)
	}
	long := "a very long recommendation body"
	if got := Truncate(long, 6); got != "a very..." {
		t.Errorf("Truncate above limit = %q, want %q", got, "a very...")
	}
}

func TestLogDisabledCategoryIsNoop(t *testing.T) {
	setCategories(t, "")

	// Must not panic or emit.
	Log("providers", "message", "key", "value")
	Trace("providers", "message", "key", "value")
}
