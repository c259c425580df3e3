package news

import (
	"fmt"
	"strings"

	"github.com/jonreiter/govader"

	"market-pulse/internal/types"
)

// Label thresholds for the average polarity. Strict inequalities: an
// average of exactly 0.1 is still neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

const emptySummary = "No recent news headlines."

// Scorer computes lexical sentiment over headline text using the VADER
// valence lexicon. Pure and deterministic; no I/O.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewScorer creates a sentiment scorer.
func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score averages per-headline polarity over title plus description.
func (s *Scorer) Score(items []types.NewsItem) types.SentimentSummary {
	if len(items) == 0 {
		return types.SentimentSummary{
			Score:   0.0,
			Label:   "neutral",
			Summary: emptySummary,
		}
	}

	total := 0.0
	for _, item := range items {
		text := strings.TrimSpace(item.Title + " " + item.Description)
		total += s.analyzer.PolarityScores(text).Compound
	}
	avg := total / float64(len(items))
	label := labelFor(avg)

	return types.SentimentSummary{
		Score:   avg,
		Label:   label,
		Summary: fmt.Sprintf("Average news sentiment: %.2f (%s)", avg, label),
	}
}

func labelFor(avg float64) string {
	switch {
	case avg > positiveThreshold:
		return "positive"
	case avg < negativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}
