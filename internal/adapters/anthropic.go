package adapters

import (
	"context"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

// DefaultAnthropicModel is used when no model is configured.
const DefaultAnthropicModel = "claude-3-5-haiku-latest"

// AnthropicEstimator asks a Claude model for a sentiment reading.
type AnthropicEstimator struct {
	client anthropic.Client
	model  string
}

// NewAnthropicEstimator creates an estimator for the given API key.
func NewAnthropicEstimator(apiKey, model string) *AnthropicEstimator {
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicEstimator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Name implements sentiment.Named.
func (a *AnthropicEstimator) Name() string { return sentiment.ProviderAnthropic }

// Estimate implements sentiment.Estimator.
func (a *AnthropicEstimator) Estimate(ctx context.Context, text string) (sentiment.Estimate, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 256,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildSentimentPrompt(text))),
		},
	})
	if err != nil {
		return sentiment.Neutral, errors.NewExternalAPIError("anthropic", err)
	}
	if len(msg.Content) == 0 {
		return sentiment.Neutral, errors.NewExternalAPIError("anthropic", fmt.Errorf("empty response"))
	}

	est, err := parseEstimate(msg.Content[0].Text)
	if err != nil {
		return sentiment.Neutral, errors.NewExternalAPIError("anthropic", err)
	}
	return est, nil
}
