package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_InvalidFormat(t *testing.T) {
	err := InvalidFormat("url", "https://host/{ID}")
	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("expected INVALID_FORMAT, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
	if !strings.Contains(err.Error(), "https://host/{ID}") {
		t.Errorf("expected message to name the format, got %q", err.Error())
	}
	if err.Details["field"] != "url" {
		t.Errorf("expected field=url, got %v", err.Details["field"])
	}
}

func TestAppError_UnexpectedShape(t *testing.T) {
	err := UnexpectedShape("feed.entry", "missing key")
	if err.Code != ErrCodeUnexpectedShape {
		t.Errorf("expected UNEXPECTED_SHAPE, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("shape errors should not be retryable")
	}
}

func TestAppError_WithCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Internal(nil).WithCause(cause)
	if err.Unwrap() != cause {
		t.Error("expected Unwrap to return cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad", http.StatusBadRequest).WithDetail("k", 1)
	if err.Details["k"] != 1 {
		t.Errorf("expected detail k=1, got %v", err.Details["k"])
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", MissingField("url"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AppError through wrapping")
	}
	if appErr.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", appErr.Code)
	}
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("plain error should not convert")
	}
	if !HasCode(wrapped, ErrCodeMissingField) {
		t.Error("expected HasCode to match")
	}
}

func TestResponse(t *testing.T) {
	body, err := json.Marshal(InvalidInput("url", "empty").Response("req-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded["error"]["code"] != string(ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", decoded["error"]["code"])
	}
	if decoded["error"]["request_id"] != "req-1" {
		t.Errorf("expected request id, got %v", decoded["error"]["request_id"])
	}

	body, _ = json.Marshal(Internal(nil).Response(""))
	if strings.Contains(string(body), "request_id") {
		t.Errorf("empty request id should be omitted: %s", body)
	}
}

func TestFromAndStatus(t *testing.T) {
	shape := UnexpectedShape("feed", "missing")
	if got := From(fmt.Errorf("wrap: %w", shape)); got != shape {
		t.Errorf("From should return the wrapped AppError, got %v", got)
	}
	plain := fmt.Errorf("boom")
	got := From(plain)
	if got.Code != ErrCodeInternal || got.Status() != http.StatusInternalServerError {
		t.Errorf("plain error should become INTERNAL_ERROR 500, got %s %d", got.Code, got.Status())
	}
	if (&AppError{Code: ErrCodeInternal}).Status() != http.StatusInternalServerError {
		t.Error("zero status should default to 500")
	}
	if shape.Status() != http.StatusBadGateway {
		t.Errorf("shape status = %d", shape.Status())
	}
}
