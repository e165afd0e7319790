package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/sheetfeed/logger"
)

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Debug("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))

	return mp, nil
}

// Meter returns the sheetfeed meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(TracerName)
}

// Metrics holds the instruments recorded by the feed pipeline.
type Metrics struct {
	fetchTotal    metric.Int64Counter
	fetchDuration metric.Float64Histogram
	recordsTotal  metric.Int64Counter
	errorTotal    metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	fetchTotal, err := meter.Int64Counter("sheets.fetch.total",
		metric.WithDescription("Total number of feed fetches"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets.fetch.total counter: %w", err)
	}

	fetchDuration, err := meter.Float64Histogram("sheets.fetch.duration",
		metric.WithDescription("Duration of feed fetches in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets.fetch.duration histogram: %w", err)
	}

	recordsTotal, err := meter.Int64Counter("sheets.records.total",
		metric.WithDescription("Total number of records produced"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets.records.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("sheets.error.total",
		metric.WithDescription("Total errors by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets.error.total counter: %w", err)
	}

	return &Metrics{
		fetchTotal:    fetchTotal,
		fetchDuration: fetchDuration,
		recordsTotal:  recordsTotal,
		errorTotal:    errorTotal,
	}, nil
}

// RecordFetch records a completed fetch and the number of records it produced.
func (m *Metrics) RecordFetch(ctx context.Context, status string, records int, duration time.Duration) {
	if m == nil {
		return
	}
	m.fetchTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	m.fetchDuration.Record(ctx, duration.Seconds())
	if records > 0 {
		m.recordsTotal.Add(ctx, int64(records))
	}
}

// RecordError records an error by kind.
func (m *Metrics) RecordError(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}
