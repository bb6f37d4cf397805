// Package api defines the wire types for the Moodreel recommendation API.
//
// This package provides the request and response payloads for the public
// endpoints (POST /api/recommend, GET /health, GET /), the structured
// [APIError] taxonomy shared by every layer, and request validation.
//
// The package has zero external dependencies (Go standard library only) and
// performs no I/O. All types marshal to the JSON contract served by the HTTP
// transport, so clients can depend on them directly.
//
// Core types:
//   - [RecommendationRequest]: Client viewing preferences for model inference
//   - [RecommendationResponse]: Recommendation text plus the echoed preferences
//   - [HealthStatus]: Liveness report including backend readiness
//   - [APIError]: Structured error with type, code, param, and message
package api
