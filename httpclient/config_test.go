package httpclient

import (
	"testing"
	"time"

	"github.com/kbukum/sheetfeed/security"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{Headers: map[string]string{"x-custom": "v"}}
	cfg.ApplyDefaults()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Timeout)
	}
	if cfg.MaxRedirects != 10 {
		t.Errorf("expected default max redirects 10, got %d", cfg.MaxRedirects)
	}
	if cfg.Headers["X-Custom"] != "v" {
		t.Errorf("expected canonical header keys, got %v", cfg.Headers)
	}
}

func TestConfig_ApplyDefaults_PreservesExisting(t *testing.T) {
	cfg := Config{Timeout: 10 * time.Second, MaxRedirects: -1}
	cfg.ApplyDefaults()
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.Timeout)
	}
	if cfg.MaxRedirects != -1 {
		t.Errorf("expected redirects disabled, got %d", cfg.MaxRedirects)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Timeout: time.Second}, false},
		{"zero timeout", Config{}, true},
		{"negative timeout", Config{Timeout: -1}, true},
		{"tls cert without key", Config{Timeout: time.Second, TLS: &security.TLSConfig{CertFile: "c.pem"}}, true},
		{"tls ca only", Config{Timeout: time.Second, TLS: &security.TLSConfig{CAFile: "ca.pem"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
