package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigWithRoot(t *testing.T) {
	cfg := DefaultConfigWithRoot("/tmp/pulse")

	if cfg.ProjectDir != "/tmp/pulse" {
		t.Errorf("expected project dir /tmp/pulse, got %s", cfg.ProjectDir)
	}
	if cfg.ExportDir != filepath.Join("/tmp/pulse", "exports") {
		t.Errorf("unexpected export dir %s", cfg.ExportDir)
	}
	if cfg.Provider != ProviderDeepSeek {
		t.Errorf("expected default provider %s, got %s", ProviderDeepSeek, cfg.Provider)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(c *Config) {},
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Provider = "bard" },
			wantErr: "unknown provider",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.RequestTimeoutSec = 0 },
			wantErr: "timeout must be positive",
		},
		{
			name:    "negative max tokens",
			mutate:  func(c *Config) { c.MaxTokens = -1 },
			wantErr: "max tokens must be positive",
		},
		{
			name: "debug port out of range",
			mutate: func(c *Config) {
				c.EinoDebugEnabled = true
				c.EinoDebugPort = 70000
			},
			wantErr: "port out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfigWithRoot(t.TempDir())
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateProviderCredentials(t *testing.T) {
	cfg := DefaultConfigWithRoot(t.TempDir())

	cfg.Provider = ProviderDeepSeek
	cfg.DeepSeekAPIKey = ""
	if err := cfg.ValidateProviderCredentials(); err == nil {
		t.Error("expected error for missing deepseek key")
	}
	cfg.DeepSeekAPIKey = "sk-test"
	if err := cfg.ValidateProviderCredentials(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Provider = ProviderREST
	cfg.AnalysisEndpoint = ""
	if err := cfg.ValidateProviderCredentials(); err == nil {
		t.Error("expected error for missing analysis endpoint")
	}
	cfg.AnalysisEndpoint = "https://analyzer.example.com/v1/analyze"
	if err := cfg.ValidateProviderCredentials(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
