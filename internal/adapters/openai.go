package adapters

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIEstimator asks an OpenAI chat model for a sentiment reading.
type OpenAIEstimator struct {
	client *openai.Client
	model  string
}

// NewOpenAIEstimator creates an estimator for the given API key.
func NewOpenAIEstimator(apiKey, model string) *OpenAIEstimator {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIEstimator{client: openai.NewClient(apiKey), model: model}
}

// Name implements sentiment.Named.
func (o *OpenAIEstimator) Name() string { return sentiment.ProviderOpenAI }

// Estimate implements sentiment.Estimator.
func (o *OpenAIEstimator) Estimate(ctx context.Context, text string) (sentiment.Estimate, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a careful tone analyst. Reply with JSON only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildSentimentPrompt(text),
			},
		},
	})
	if err != nil {
		return sentiment.Neutral, errors.NewExternalAPIError("openai", err)
	}
	if len(resp.Choices) == 0 {
		return sentiment.Neutral, errors.NewExternalAPIError("openai", fmt.Errorf("empty response"))
	}

	est, err := parseEstimate(resp.Choices[0].Message.Content)
	if err != nil {
		return sentiment.Neutral, errors.NewExternalAPIError("openai", err)
	}
	return est, nil
}
