package sentiment

import (
	"context"
	"math"
	"strings"

	"github.com/drankou/go-vader/vader"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// LocalConfig tunes the local estimator.
type LocalConfig struct {
	// NeutralBand is the |compound| below which a sentence carries no opinion.
	NeutralBand float64
}

// DefaultLocalConfig returns standard configuration.
func DefaultLocalConfig() LocalConfig {
	return LocalConfig{NeutralBand: 0.05}
}

// Local estimates sentiment in process with VADER. It splits text into
// sentences, scores each one and averages them. Polarity is the mean compound
// score of the opinionated sentences; subjectivity is the mean non-neutral
// share of every sentence. It is deterministic and safe for concurrent use.
type Local struct {
	config    LocalConfig
	tokenizer *sentences.DefaultSentenceTokenizer
	analyzer  *vader.SentimentIntensityAnalyzer
}

// NewLocal builds the local estimator. The sentence model and the VADER
// lexicon ship with their libraries, so failure here means one is unusable.
func NewLocal(config LocalConfig) (*Local, error) {
	if config.NeutralBand <= 0 || config.NeutralBand >= 1 {
		config.NeutralBand = DefaultLocalConfig().NeutralBand
	}
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	analyzer := &vader.SentimentIntensityAnalyzer{}
	if err := analyzer.Init(); err != nil {
		return nil, err
	}
	return &Local{config: config, tokenizer: tokenizer, analyzer: analyzer}, nil
}

// Name implements Named.
func (l *Local) Name() string { return ProviderLocal }

// Estimate implements Estimator.
func (l *Local) Estimate(ctx context.Context, text string) (Estimate, error) {
	if err := ctx.Err(); err != nil {
		return Neutral, err
	}

	var (
		compoundSum float64
		opinionSum  float64
		scored      int
		total       int
	)
	for _, sent := range l.split(text) {
		scores := l.analyzer.PolarityScores(sent)
		if scores.Positive+scores.Negative+scores.Neutral == 0 {
			// no words, only punctuation or symbols
			continue
		}
		total++
		opinionSum += 1 - scores.Neutral
		if math.Abs(scores.Compound) >= l.config.NeutralBand {
			compoundSum += scores.Compound
			scored++
		}
	}

	if total == 0 {
		return Neutral, nil
	}

	est := Estimate{Subjectivity: opinionSum / float64(total)}
	if scored > 0 {
		est.Polarity = compoundSum / float64(scored)
	}
	return est.Clamp(), nil
}

func (l *Local) split(text string) []string {
	var out []string
	for _, s := range l.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}
