package gateway

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/deepseek"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/dyike/PulseGo/config"
	"github.com/dyike/PulseGo/internal/models"
)

// batchState carries the request URLs through the chain so the parse step
// can hold the response to the one-entry-per-URL contract.
type batchState struct {
	URLs []string
}

// LLMProvider runs the analysis prompt through an eino chat model chain.
type LLMProvider struct {
	name     string
	runnable compose.Runnable[[]string, []models.PostResult]
}

// NewLLMProvider compiles the prompt -> chat model -> parse chain for the
// configured provider.
func NewLLMProvider(ctx context.Context, cfg *config.Config) (*LLMProvider, error) {
	chatModel, err := newChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	chain := compose.NewChain[[]string, []models.PostResult](
		compose.WithGenLocalState(func(ctx context.Context) *batchState {
			return &batchState{}
		}),
	)
	chain.AppendLambda(compose.InvokableLambdaWithOption(buildPromptStep))
	chain.AppendChatModel(chatModel)
	chain.AppendLambda(compose.InvokableLambdaWithOption(parseResponseStep))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile analysis chain: %w", err)
	}

	return &LLMProvider{name: cfg.Provider, runnable: runnable}, nil
}

// Analyze implements Provider. One model invocation per batch; a failed
// invocation or an ill-formed response fails the batch.
func (p *LLMProvider) Analyze(ctx context.Context, urls []string) ([]models.PostResult, error) {
	results, err := p.runnable.Invoke(ctx, urls)
	if err != nil {
		return nil, &ProviderError{Provider: p.name, Cause: err}
	}
	return results, nil
}

func buildPromptStep(ctx context.Context, urls []string, opts ...any) ([]*schema.Message, error) {
	err := compose.ProcessState[*batchState](ctx, func(_ context.Context, state *batchState) error {
		state.URLs = urls
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buildMessages(urls), nil
}

func parseResponseStep(ctx context.Context, response *schema.Message, opts ...any) ([]models.PostResult, error) {
	var urls []string
	err := compose.ProcessState[*batchState](ctx, func(_ context.Context, state *batchState) error {
		urls = state.URLs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parseAnalysisResponse(response.Content, urls)
}

func newChatModel(ctx context.Context, cfg *config.Config) (model.ChatModel, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		maxTokens := cfg.MaxTokens
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL:   cfg.BackendURL,
			APIKey:    cfg.OpenAIAPIKey,
			Model:     cfg.Model,
			MaxTokens: &maxTokens,
		})
	case config.ProviderDeepSeek:
		return deepseek.NewChatModel(ctx, &deepseek.ChatModelConfig{
			APIKey:    cfg.DeepSeekAPIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
		})
	default:
		return nil, fmt.Errorf("no chat model for provider %s", cfg.Provider)
	}
}
