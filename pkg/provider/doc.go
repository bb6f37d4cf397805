// Package provider defines the backend-agnostic interface for LLM chat
// completion backends. Each adapter implementation (groq, gemini, mock)
// handles its own backend protocol internally. The interface operates on
// Moodreel's own types (ChatRequest, ChatResponse), keeping backend SDK
// details invisible to the engine.
package provider
