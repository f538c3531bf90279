package adapters

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

// maxPromptChars bounds the text sent to LLM providers.
const maxPromptChars = 8000

// buildSentimentPrompt creates the LLM prompt for one document.
func buildSentimentPrompt(text string) string {
	if r := []rune(text); len(r) > maxPromptChars {
		text = string(r[:maxPromptChars])
	}
	return fmt.Sprintf(`You rate the tone of job advertisements.

Read the advertisement below and return its overall sentiment.

Advertisement:
---
%s
---

Output ONLY a valid JSON object matching this exact schema:
{"polarity": <number from -1 (very negative) to 1 (very positive)>, "subjectivity": <number from 0 (factual) to 1 (opinionated)>}

Output ONLY the JSON, no markdown, no explanations`, text)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// parseEstimate decodes an LLM reply into a clamped estimate.
func parseEstimate(reply string) (sentiment.Estimate, error) {
	jsonStr, err := extractJSON(reply)
	if err != nil {
		return sentiment.Neutral, err
	}

	var raw struct {
		Polarity     *float64 `json:"polarity"`
		Subjectivity *float64 `json:"subjectivity"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return sentiment.Neutral, fmt.Errorf("decode estimate: %w", err)
	}
	if raw.Polarity == nil || raw.Subjectivity == nil {
		return sentiment.Neutral, fmt.Errorf("estimate is missing polarity or subjectivity")
	}
	return sentiment.Estimate{Polarity: *raw.Polarity, Subjectivity: *raw.Subjectivity}.Clamp(), nil
}
