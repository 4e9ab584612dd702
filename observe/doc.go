// Package observe provides dijkstra.Observer implementations that carry the
// stepping engine's events into the ambient stack: structured logs (slog),
// OpenTelemetry spans, Prometheus metrics, and an in-memory Recorder for
// visualizers and tests. Multi fans one event stream out to several observers.
//
// Observers run synchronously inside Engine.Step, so each one is cheap and
// none of them call back into the engine.
package observe
