// Package observe provides telemetry for the caching layer: OpenTelemetry
// tracing and metrics behind a single Observer facade, a structured JSON
// logger, and an Instrumenter that wraps individual cache operations.
package observe
