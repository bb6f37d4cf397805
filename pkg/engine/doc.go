// Package engine implements the core orchestration logic for Moodreel.
// The Engine struct implements transport.Recommender, bridging incoming
// recommendation requests to the flow pipeline and its provider backend.
// It applies model defaults, records provider metrics, and maps pipeline
// failures to the API error taxonomy.
package engine
