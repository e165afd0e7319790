package sheets

import (
	"strings"
	"testing"

	apperrors "github.com/kbukum/sheetfeed/errors"
)

func TestParseDocID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"edit link", "https://docs.google.com/spreadsheets/d/1AbC-x_9/edit#gid=0", "1AbC-x_9"},
		{"pubhtml", "https://docs.google.com/spreadsheets/d/XYZ/pubhtml", "XYZ"},
		{"nested path", "https://docs.google.com/spreadsheets/d/XYZ/edit/more", "XYZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDocID(tt.url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDocID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDocID_Invalid(t *testing.T) {
	tests := []string{
		"https://example.com/foo",
		"",
		"http://docs.google.com/spreadsheets/d/XYZ/edit",
		"https://docs.google.com/spreadsheets/d/XYZ",
		"https://docs.google.com/spreadsheets/d/XYZ/",
		"https://docs.google.com/document/d/XYZ/edit",
		" https://docs.google.com/spreadsheets/d/XYZ/edit",
	}
	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			id, err := ParseDocID(url)
			if id != "" {
				t.Errorf("expected no id, got %q", id)
			}
			if !apperrors.HasCode(err, apperrors.ErrCodeInvalidFormat) {
				t.Fatalf("expected INVALID_FORMAT, got %v", err)
			}
			if !strings.Contains(err.Error(), ExpectedDocURL) {
				t.Errorf("expected message to name the accepted shape, got %q", err.Error())
			}
		})
	}
}

func TestFeedURL(t *testing.T) {
	want := "https://spreadsheets.google.com/feeds/list/XYZ/od6/public/values?alt=json"
	if got := FeedURL("XYZ"); got != want {
		t.Errorf("FeedURL() = %q, want %q", got, want)
	}
}

func TestDocURLToFeedURL(t *testing.T) {
	got, err := DocURLToFeedURL("https://docs.google.com/spreadsheets/d/XYZ/edit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != FeedURL("XYZ") {
		t.Errorf("unexpected feed url %q", got)
	}

	got, err = DocURLToFeedURL("https://example.com/foo")
	if err == nil || got != "" {
		t.Errorf("expected error and no url, got %q, %v", got, err)
	}
}
