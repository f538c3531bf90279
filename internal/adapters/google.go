package adapters

import (
	"context"
	"encoding/base64"
	"math"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

// GoogleEstimator reads document sentiment from the Cloud Natural Language API.
type GoogleEstimator struct {
	client *language.Client
}

// NewGoogleEstimator creates a client from base64-encoded service account
// JSON or, when that is empty, from a credentials file.
func NewGoogleEstimator(ctx context.Context, credentialsB64, credentialsFile string) (*GoogleEstimator, error) {
	var opt option.ClientOption
	if credentialsB64 != "" {
		creds, err := base64.StdEncoding.DecodeString(credentialsB64)
		if err != nil {
			return nil, errors.NewConfigurationError("decode google credentials", err)
		}
		opt = option.WithCredentialsJSON(creds)
	} else {
		opt = option.WithCredentialsFile(credentialsFile)
	}

	client, err := language.NewClient(ctx, opt)
	if err != nil {
		return nil, errors.NewExternalAPIError("google", err)
	}
	return &GoogleEstimator{client: client}, nil
}

// Name implements sentiment.Named.
func (g *GoogleEstimator) Name() string { return sentiment.ProviderGoogle }

// Estimate implements sentiment.Estimator.
func (g *GoogleEstimator) Estimate(ctx context.Context, text string) (sentiment.Estimate, error) {
	resp, err := g.client.AnalyzeSentiment(ctx, &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	})
	if err != nil {
		return sentiment.Neutral, errors.NewExternalAPIError("google", err)
	}
	if resp.DocumentSentiment == nil {
		return sentiment.Neutral, nil
	}
	return fromGoogle(resp.DocumentSentiment.Score, resp.DocumentSentiment.Magnitude, len(resp.Sentences)), nil
}

// fromGoogle maps score/magnitude onto polarity/subjectivity. Magnitude is
// total emotional weight, so it is averaged over sentences.
func fromGoogle(score, magnitude float32, sentences int) sentiment.Estimate {
	return sentiment.Estimate{
		Polarity:     float64(score),
		Subjectivity: math.Min(1, float64(magnitude)/math.Max(1, float64(sentences))),
	}.Clamp()
}

// Close releases the gRPC connection.
func (g *GoogleEstimator) Close() error {
	return g.client.Close()
}
