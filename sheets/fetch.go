package sheets

import (
	"context"
	"time"

	apperrors "github.com/kbukum/sheetfeed/errors"
	"github.com/kbukum/sheetfeed/httpclient"
	"github.com/kbukum/sheetfeed/logger"
	"github.com/kbukum/sheetfeed/observability"
)

// Getter performs a single GET. *httpclient.Client satisfies it.
type Getter interface {
	Get(ctx context.Context, rawURL string, opts ...httpclient.CallOption) (*httpclient.Response, error)
}

// Fetcher downloads and converts spreadsheet feeds. Each call issues
// exactly one request; nothing is cached or retried.
type Fetcher struct {
	getter  Getter
	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLogger sets the fetcher logger.
func WithLogger(l *logger.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.log = l
		}
	}
}

// WithMetrics records fetch metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(f *Fetcher) { f.metrics = m }
}

// NewFetcher creates a fetcher issuing requests through getter.
func NewFetcher(getter Getter, opts ...Option) *Fetcher {
	f := &Fetcher{getter: getter, log: logger.NewNop()}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.WithComponent("sheets")
	return f
}

// FetchRaw normalizes docURL, downloads its feed and returns the body.
// Any status outside 2xx, transport failures included, is an
// httpclient status error.
func (f *Fetcher) FetchRaw(ctx context.Context, docURL string) ([]byte, error) {
	feedURL, err := DocURLToFeedURL(docURL)
	if err != nil {
		f.metrics.RecordError(ctx, string(apperrors.ErrCodeInvalidFormat))
		return nil, err
	}

	resp, err := f.getter.Get(ctx, feedURL)
	if err != nil {
		f.metrics.RecordError(ctx, "request")
		return nil, err
	}
	if err := resp.RaiseForStatus(); err != nil {
		f.metrics.RecordError(ctx, "status")
		f.log.Debug("feed request failed", logger.Fields(
			logger.FieldURL, feedURL,
			logger.FieldStatus, resp.StatusCode,
			logger.FieldError, err.Error(),
		))
		return nil, err
	}
	return resp.Body, nil
}

// FetchFeed downloads the feed behind docURL and converts it into records.
func (f *Fetcher) FetchFeed(ctx context.Context, docURL string) ([]Record, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanFeedFetch)
	defer span.End()

	log := f.log
	if id, err := ParseDocID(docURL); err == nil {
		observability.SetSpanAttribute(ctx, observability.AttrDocID, id)
		log = log.WithFields(logger.Fields(logger.FieldDocID, id))
	}

	start := time.Now()
	body, err := f.FetchRaw(ctx, docURL)
	if err != nil {
		observability.SetSpanError(ctx, err)
		f.metrics.RecordFetch(ctx, "error", 0, time.Since(start))
		return nil, err
	}

	records, err := f.convert(ctx, body)
	if err != nil {
		observability.SetSpanError(ctx, err)
		f.metrics.RecordError(ctx, string(apperrors.ErrCodeUnexpectedShape))
		f.metrics.RecordFetch(ctx, "error", 0, time.Since(start))
		return nil, err
	}

	observability.SetSpanAttribute(ctx, observability.AttrRecords, len(records))
	f.metrics.RecordFetch(ctx, "ok", len(records), time.Since(start))
	log.Debug("feed fetched", logger.MergeWithDuration(logger.Fields(
		logger.FieldURL, docURL,
		logger.FieldRecords, len(records),
	), time.Since(start)))
	return records, nil
}

func (f *Fetcher) convert(ctx context.Context, body []byte) ([]Record, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanFeedConvert)
	defer span.End()

	records, err := Convert(body)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}
	return records, nil
}
