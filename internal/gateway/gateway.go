// Package gateway submits URL batches to an external sentiment analysis
// provider and decodes the per-post breakdowns it returns.
package gateway

import (
	"context"
	"fmt"

	"github.com/dyike/PulseGo/config"
	"github.com/dyike/PulseGo/internal/models"
)

// Provider analyzes a batch of post URLs in one request. Implementations
// return exactly one result per URL in request order. A single failure
// anywhere in the batch fails the whole call; there are no retries and no
// partially salvaged results.
type Provider interface {
	Analyze(ctx context.Context, urls []string) ([]models.PostResult, error)
}

// NewProvider builds the analysis provider selected by the configuration.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, config.ProviderDeepSeek:
		return NewLLMProvider(ctx, cfg)
	case config.ProviderREST:
		return NewRESTProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown analysis provider: %s", cfg.Provider)
	}
}
