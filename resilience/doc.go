// Package resilience bounds cache-adjacent operations in time. The warmer
// uses it to isolate individual warming steps; health checks use it to keep a
// slow backend from stalling the whole probe.
package resilience
