package sheets

import (
	"fmt"
	"regexp"

	apperrors "github.com/kbukum/sheetfeed/errors"
)

// ExpectedDocURL describes the accepted document URL shape.
const ExpectedDocURL = "https://docs.google.com/spreadsheets/d/{CODE}/..."

const feedURLTemplate = "https://spreadsheets.google.com/feeds/list/%s/od6/public/values?alt=json"

var docURLPattern = regexp.MustCompile(`^https://docs\.google\.com/spreadsheets/d/([^/]+)/.+`)

// ParseDocID extracts the document identifier from a document URL such as
// https://docs.google.com/spreadsheets/d/{id}/edit.
func ParseDocID(docURL string) (string, error) {
	m := docURLPattern.FindStringSubmatch(docURL)
	if m == nil {
		return "", apperrors.InvalidFormat("url", ExpectedDocURL).WithDetail("url", docURL)
	}
	return m[1], nil
}

// FeedURL renders the public JSON list-feed endpoint for a document id.
func FeedURL(docID string) string {
	return fmt.Sprintf(feedURLTemplate, docID)
}

// DocURLToFeedURL converts a document URL to its feed endpoint.
func DocURLToFeedURL(docURL string) (string, error) {
	id, err := ParseDocID(docURL)
	if err != nil {
		return "", err
	}
	return FeedURL(id), nil
}
