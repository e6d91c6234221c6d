package factory

import (
	"fmt"

	"go-radiology-assistant/internal/config"
	apperrors "go-radiology-assistant/internal/errors"
	"go-radiology-assistant/internal/gemini"
	"go-radiology-assistant/internal/llm"
	"go-radiology-assistant/internal/stubllm"
)

// ClientFactory creates report generator clients.
type ClientFactory interface {
	CreateClient(cfg *config.Config) (llm.Client, error)
}

type clientFactory struct{}

// NewClientFactory creates a client factory.
func NewClientFactory() ClientFactory {
	return &clientFactory{}
}

// CreateClient builds the provider selected in the configuration. A
// Gemini client is returned even without a credential: the service
// detects the disabled client and short-circuits with a
// configuration-error report instead of failing startup.
func (f *clientFactory) CreateClient(cfg *config.Config) (llm.Client, error) {
	switch cfg.ModelProvider {
	case config.ProviderGemini:
		return gemini.NewClient(cfg.GoogleAPIKey, cfg.GeminiModel, cfg.ModelTimeout), nil
	case config.ProviderStub:
		return stubllm.NewClient(), nil
	default:
		return nil, apperrors.NewConfigurationError(
			fmt.Sprintf("unsupported model provider: %s", cfg.ModelProvider), nil)
	}
}
