// Package engine is the single orchestration entry point over cpm, crmm,
// and rsm: it selects the requested algorithm, wires the ambient stack
// (structured logging, Prometheus metrics, OpenTelemetry tracing, a
// per-call run ID) around the call, and returns a Report alongside the
// resulting domain.Matching.
package engine
