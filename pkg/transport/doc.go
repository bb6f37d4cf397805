// Package transport defines the handler interface and middleware chain for
// the moodreel HTTP transport layer.
//
// The transport layer bridges external clients and moodreel's recommendation
// engine. It deserializes incoming requests into the wire types defined in
// pkg/api, dispatches them for processing, and serializes responses back to
// the client as JSON.
//
// # Handler Interface
//
// Recommender is the single contract between the transport layer and the
// engine: it receives a validated RecommendationRequest and returns either
// a RecommendationResponse or an APIError.
//
// # Middleware
//
// The middleware chain wraps Recommender with cross-cutting concerns.
// Built-in middleware provides panic recovery, request ID assignment
// (X-Request-ID), and structured logging via log/slog. Custom middleware
// can be added for application-specific concerns.
//
// This package uses only Go standard library packages; HTTP serving lives
// in the http subpackage, which wires net/http with Go 1.22+ ServeMux
// routing patterns plus CORS and rate-limit middleware.
package transport
