package server

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/sheetfeed/errors"
	"github.com/kbukum/sheetfeed/httpclient"
	"github.com/kbukum/sheetfeed/logger"
	"github.com/kbukum/sheetfeed/server/middleware"
	"github.com/kbukum/sheetfeed/sheets"
	"github.com/kbukum/sheetfeed/validation"
)

// FeedFetcher fetches and converts a spreadsheet feed. *sheets.Fetcher
// satisfies it.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, docURL string) ([]sheets.Record, error)
}

// FeedHandler serves GET /feed?url=<document url> as {"data": [records]}.
func FeedHandler(f FeedFetcher, log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.NewNop()
	}
	return func(c *gin.Context) {
		docURL := c.Query("url")
		if err := validation.Required("url", docURL); err != nil {
			RespondWithError(c, err)
			return
		}

		records, err := f.FetchFeed(c.Request.Context(), docURL)
		if err != nil {
			err = upstreamError(err)
			fields := logger.Fields(
				logger.FieldRequestID, c.GetHeader(middleware.HeaderRequestID),
				logger.FieldURL, docURL,
				logger.FieldError, err.Error(),
			)
			// A shape error means the published document changed format.
			if apperrors.HasCode(err, apperrors.ErrCodeUnexpectedShape) {
				log.Warn("feed document has an unexpected shape", fields)
			} else {
				log.Debug("feed request failed", fields)
			}
			RespondWithError(c, err)
			return
		}
		RespondOK(c, records)
	}
}

// upstreamError maps HTTP client failures to EXTERNAL_SERVICE_ERROR.
// AppErrors pass through unchanged.
func upstreamError(err error) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	var hErr *httpclient.Error
	if !errors.As(err, &hErr) {
		return err
	}
	appErr := apperrors.ExternalServiceError("spreadsheets", err)
	appErr.WithDetail("reason", hErr.Code.String())
	if hErr.Code == httpclient.ErrCodeStatus {
		appErr.WithDetail("upstream_status", hErr.StatusCode)
	}
	return appErr
}
