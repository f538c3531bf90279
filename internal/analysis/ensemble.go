package analysis

// Ensemble weights per method. They sum to 1.
const (
	LexiconWeight    = 0.40
	ContextualWeight = 0.35
	SentimentWeight  = 0.25
)

// Combine is the weighted sum of the three method scores, rounded to one decimal.
func Combine(lexiconScore, contextualScore, sentimentScore float64) float64 {
	return round1(LexiconWeight*lexiconScore + ContextualWeight*contextualScore + SentimentWeight*sentimentScore)
}

// CombineConfidence averages the method confidences, capped at 95.
func CombineConfidence(lexiconConf, contextualConf, sentimentConf float64) float64 {
	return round1(clip((lexiconConf+contextualConf+sentimentConf)/3, 0, maxEnsembleConfidence))
}
