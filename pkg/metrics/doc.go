// Package metrics provides the observability primitives for the vortex-go
// library: structured leveled logging and a pluggable tracing interface.
//
// # Structured Logging
//
// The Logger provides leveled, structured logging in text or JSON form:
//
//	logger := metrics.NewLogger(
//		metrics.WithLevel(metrics.LevelInfo),
//		metrics.WithFormat(metrics.FormatJSON),
//		metrics.WithFields(metrics.Fields{"service": "vortex"}),
//	)
//
//	logger.Warn("round count below recommended margin", metrics.Fields{
//		"rounds":      12,
//		"recommended": 20,
//	})
//
// The AEAD engine only ever logs advisory events and sizes; no key,
// nonce, plaintext or tag material reaches a log line.
//
// # Tracing
//
// The Tracer interface is backend-agnostic. NoOpTracer is the default,
// SimpleTracer records spans in memory for tests, and OTelTracer adapts
// the global OpenTelemetry provider when built with -tags otel:
//
//	tracer := metrics.NewOTelTracer("vortex-go")
//	aead, err := crypto.New(key, crypto.WithTracer(tracer))
//
//	ctx, end := metrics.StartSpan(ctx, metrics.SpanEncrypt)
//	defer end(nil) // or end(err) on failure
package metrics
