package sheets

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/kbukum/sheetfeed/errors"
)

// WatchFunc receives the result of every fetch made by Watch.
type WatchFunc func(records []Record, err error)

// Watch fetches docURL immediately and then once per interval, passing each
// result to fn. Every tick is an independent fetch; failures go to fn and
// are not retried. Watch blocks until ctx is done and returns ctx.Err().
func Watch(ctx context.Context, f *Fetcher, docURL string, interval time.Duration, fn WatchFunc) error {
	if interval <= 0 {
		return apperrors.InvalidInput("interval", fmt.Sprintf("watch interval must be positive, got %s", interval))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(f.FetchFeed(ctx, docURL))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
