// Package debug provides switchable diagnostic logging for moodreel.
//
// Output is gated on two axes. MOODREEL_DEBUG selects categories
// (comma-separated: providers, engine, flow, transport, config, or all),
// and MOODREEL_LOG_LEVEL selects verbosity (ERROR, WARN, INFO, DEBUG,
// TRACE). Both can also come from configuration through Init; the
// environment wins when both are set.
//
//	debug.Log("providers", "completion received", "model", model)
//	if debug.Enabled("flow") { /* expensive formatting */ }
package debug

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace sits below slog.LevelDebug. At TRACE the service logs full
// request and response bodies without truncation.
const LevelTrace slog.Level = slog.LevelDebug - 4

var enabled map[string]bool

func init() {
	enabled = parseCategories(os.Getenv("MOODREEL_DEBUG"))
}

// Init applies debug settings from configuration. Environment variables
// take precedence so a deployment can turn on tracing without editing
// config files. Init also installs the default slog handler at the
// resolved level.
func Init(configCategories, configLevel string) {
	cats := os.Getenv("MOODREEL_DEBUG")
	if cats == "" {
		cats = configCategories
	}
	enabled = parseCategories(cats)

	level := os.Getenv("MOODREEL_LOG_LEVEL")
	if level == "" {
		level = configLevel
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})))
}

// Enabled reports whether the category is active.
func Enabled(category string) bool {
	return enabled["all"] || enabled[category]
}

// Log emits a DEBUG record when the category is active.
func Log(category, msg string, args ...any) {
	if !Enabled(category) {
		return
	}
	slog.Debug(msg, append([]any{"debug", category}, args...)...)
}

// Trace emits a TRACE record when the category is active. Records at this
// level only appear when MOODREEL_LOG_LEVEL=TRACE.
func Trace(category, msg string, args ...any) {
	if !Enabled(category) {
		return
	}
	slog.Log(nil, LevelTrace, msg, append([]any{"debug", category}, args...)...)
}

// TraceIsEnabled reports whether TRACE output would be emitted for the category.
func TraceIsEnabled(category string) bool {
	return Enabled(category) && slog.Default().Enabled(nil, LevelTrace)
}

// Raw writes text straight to stderr, bypassing slog formatting, so bodies
// stay copy-paste ready. Emitted only when the category traces.
func Raw(category, text string) {
	if !TraceIsEnabled(category) {
		return
	}
	fmt.Fprintln(os.Stderr, text)
}

// ParseLevel converts a level name to a slog.Level. Unknown names and the
// empty string resolve to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Truncate caps s at max characters, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func parseCategories(list string) map[string]bool {
	set := make(map[string]bool)
	for _, cat := range strings.Split(list, ",") {
		if cat = strings.ToLower(strings.TrimSpace(cat)); cat != "" {
			set[cat] = true
		}
	}
	return set
}
