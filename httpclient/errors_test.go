package httpclient

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeValidation, "validation"},
		{ErrCodeStatus, "status"},
		{ErrCodeSecurityMismatch, "security_mismatch"},
		{ErrCodeTLSConfig, "tls_config"},
		{ErrCodeUnsupported, "unsupported"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	e := NewStatusError(404, "Not Found")
	want := "httpclient: status (HTTP 404): status code not in 2XX range: 404 - Not Found"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	e2 := NewStatusError(StatusTransportFailure, "connection refused")
	if !strings.Contains(e2.Error(), "HTTP -1") {
		t.Errorf("expected sentinel status in message, got %q", e2.Error())
	}

	e3 := NewValidationError("bad url")
	if got := e3.Error(); got != "httpclient: validation: bad url" {
		t.Errorf("got %q", got)
	}
}

func TestNewSecurityMismatchError(t *testing.T) {
	secure := NewSecurityMismatchError(true, "http://x")
	if !strings.Contains(secure.Message, "plain channel on a secure parent") {
		t.Errorf("unexpected message %q", secure.Message)
	}
	plain := NewSecurityMismatchError(false, "https://x")
	if !strings.Contains(plain.Message, "parent context lacks it") {
		t.Errorf("unexpected message %q", plain.Message)
	}
}

func TestNewTLSConfigError_Unwrap(t *testing.T) {
	inner := errors.New("no roots")
	err := NewTLSConfigError(inner)
	if !errors.Is(err, inner) {
		t.Error("expected TLS config error to wrap its cause")
	}
}

func TestNewUnsupportedError_IsSentinel(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewUnsupportedError(MethodPost))
	if !errors.Is(err, ErrUnsupportedMethod) {
		t.Error("expected errors.Is to match ErrUnsupportedMethod")
	}
	if !IsUnsupported(err) {
		t.Error("expected IsUnsupported to match")
	}
	if IsStatus(err) || IsSecurityMismatch(err) || IsTLSConfig(err) || IsValidation(err) {
		t.Error("unsupported error must not match other kinds")
	}
}

func TestIsHelpers_NonClientError(t *testing.T) {
	err := errors.New("plain")
	if IsStatus(err) || IsUnsupported(err) || IsValidation(err) {
		t.Error("plain errors must not match")
	}
}
