package factory

import (
	"testing"
	"time"

	"go-radiology-assistant/internal/config"
	apperrors "go-radiology-assistant/internal/errors"
)

func TestCreateClient(t *testing.T) {
	tests := []struct {
		name        string
		provider    string
		apiKey      string
		wantSource  string
		wantEnabled bool
	}{
		{"Gemini with key", config.ProviderGemini, "test-key", "Gemini", true},
		{"Gemini without key is disabled", config.ProviderGemini, "", "Gemini", false},
		{"Stub", config.ProviderStub, "", "Stub", true},
	}

	f := NewClientFactory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				ModelProvider: tt.provider,
				GoogleAPIKey:  tt.apiKey,
				GeminiModel:   "gemini-2.0-flash-exp",
				ModelTimeout:  time.Minute,
			}

			client, err := f.CreateClient(cfg)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if client.SourceName() != tt.wantSource {
				t.Errorf("Expected source %q, got %q", tt.wantSource, client.SourceName())
			}
			if client.Enabled() != tt.wantEnabled {
				t.Errorf("Expected enabled=%v, got %v", tt.wantEnabled, client.Enabled())
			}
		})
	}
}

func TestCreateClient_UnknownProvider(t *testing.T) {
	_, err := NewClientFactory().CreateClient(&config.Config{ModelProvider: "openai"})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeConfiguration) {
		t.Errorf("Expected configuration error, got: %v", err)
	}
}
