package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dyike/PulseGo/config"
	"github.com/dyike/PulseGo/internal/models"
)

// analysisRequest is the batch payload posted to a self-hosted analyzer.
type analysisRequest struct {
	URLs []string `json:"urls"`
}

// RESTProvider posts URL batches to an analyzer endpoint that answers in the
// sentiment breakdown schema directly.
type RESTProvider struct {
	client   *resty.Client
	endpoint string
}

// NewRESTProvider creates the provider for the configured endpoint.
func NewRESTProvider(cfg *config.Config) *RESTProvider {
	client := resty.New()
	client.SetTimeout(time.Duration(cfg.RequestTimeoutSec) * time.Second)
	client.SetHeader("User-Agent", cfg.UserAgent)
	client.SetHeader("Content-Type", "application/json")
	if cfg.AnalysisToken != "" {
		client.SetAuthToken(cfg.AnalysisToken)
	}

	return &RESTProvider{client: client, endpoint: cfg.AnalysisEndpoint}
}

// Analyze implements Provider. Exactly one POST per batch; any transport or
// schema failure fails the batch with no retry.
func (p *RESTProvider) Analyze(ctx context.Context, urls []string) ([]models.PostResult, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(analysisRequest{URLs: urls}).
		Post(p.endpoint)
	if err != nil {
		return nil, &ProviderError{Provider: config.ProviderREST, Cause: err}
	}
	if resp.StatusCode() != 200 {
		return nil, &ProviderError{
			Provider: config.ProviderREST,
			Cause:    fmt.Errorf("analyzer API error %d: %s", resp.StatusCode(), resp.String()),
		}
	}

	results, err := parseAnalysisResponse(string(resp.Body()), urls)
	if err != nil {
		return nil, &ProviderError{Provider: config.ProviderREST, Cause: err}
	}
	return results, nil
}
