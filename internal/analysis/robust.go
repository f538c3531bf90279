package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	scoreLimit = 100.0

	maxLexiconConfidence    = 90.0
	maxContextualConfidence = 85.0
	maxSentimentConfidence  = 80.0
	maxEnsembleConfidence   = 95.0
)

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clipScore(x float64) float64 {
	return clip(x, -scoreLimit, scoreLimit)
}

// round1 rounds half away from zero to one decimal place.
func round1(x float64) float64 {
	r := math.Round(x*10) / 10
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// confidence computes min(limit, base + step*n).
func confidence(base, step float64, n int, limit float64) float64 {
	return math.Min(limit, base+step*float64(n))
}

// spread is the sample standard deviation of the method scores.
func spread(scores ...float64) float64 {
	if len(scores) < 2 {
		return 0
	}
	_, std := stat.MeanStdDev(scores, nil)
	return round1(std)
}
