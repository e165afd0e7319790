package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.ServiceName != "sheetfeed" {
		t.Errorf("expected ServiceName 'sheetfeed', got %s", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
	if cfg.Enabled() {
		t.Error("expected export disabled without endpoint")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{SampleRate: 2}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for sample rate above 1")
	}
}

func TestInit_DisabledIsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}

func TestStartSpan_RecordsAttributesAndErrors(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	ctx, span := StartSpan(context.Background(), SpanFeedFetch)
	SetSpanAttribute(ctx, AttrDocID, "ABC123")
	SetSpanAttribute(ctx, AttrRecords, 3)
	SetSpanAttribute(ctx, AttrSecure, true)
	SetSpanError(ctx, errors.New("boom"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	got := spans[0]
	if got.Name != SpanFeedFetch {
		t.Errorf("expected span %s, got %s", SpanFeedFetch, got.Name)
	}
	if got.Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", got.Status.Code)
	}
	if len(got.Attributes) != 3 {
		t.Errorf("expected 3 attributes, got %d", len(got.Attributes))
	}
}

func TestSetSpanHelpers_NoSpan(t *testing.T) {
	// These should not panic without a recording span
	SetSpanAttribute(context.Background(), "k", "v")
	SetSpanError(context.Background(), errors.New("x"))
}

func TestMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}

	ctx := context.Background()
	metrics.RecordFetch(ctx, "ok", 4, 20*time.Millisecond)
	metrics.RecordError(ctx, "shape")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("unexpected collect error: %v", err)
	}
	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	for _, want := range []string{"sheets.fetch.total", "sheets.fetch.duration", "sheets.records.total", "sheets.error.total"} {
		if !names[want] {
			t.Errorf("expected metric %s to be collected", want)
		}
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordFetch(context.Background(), "ok", 1, time.Second)
	m.RecordError(context.Background(), "x")

	noopMetrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	noopMetrics.RecordFetch(context.Background(), "ok", 0, 0)
}
