// Package observability wires OpenTelemetry tracing and metrics.
//
// Library code only talks to the global providers through StartSpan and
// Metrics, so nothing is exported unless Init installed an OTLP pipeline.
//
//	shutdown, err := observability.Init(ctx, cfg)
//	defer shutdown(context.Background())
package observability
