package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-pulse/internal/types"
)

func TestScoreEmptyInput(t *testing.T) {
	s := NewScorer()

	got := s.Score(nil)

	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, "neutral", got.Label)
	assert.Equal(t, "No recent news headlines.", got.Summary)
}

func TestScoreDeterministic(t *testing.T) {
	s := NewScorer()
	items := []types.NewsItem{
		{Title: "Acme shares surge on record earnings", Description: "Profit beats expectations"},
		{Title: "Analysts warn of supply chain risks", Description: ""},
	}

	first := s.Score(items)
	second := s.Score(items)

	assert.Equal(t, first, second)
}

func TestScoreBounded(t *testing.T) {
	s := NewScorer()
	items := []types.NewsItem{
		{Title: "Terrible catastrophic losses wipe out shareholders", Description: "Worst crash in decades"},
	}

	got := s.Score(items)

	assert.GreaterOrEqual(t, got.Score, -1.0)
	assert.LessOrEqual(t, got.Score, 1.0)
	require.Contains(t, []string{"positive", "negative", "neutral"}, got.Label)
	assert.Contains(t, got.Summary, got.Label)
}

func TestScoreUsesDescription(t *testing.T) {
	s := NewScorer()
	bare := []types.NewsItem{{Title: "Acme quarterly report"}}
	described := []types.NewsItem{{Title: "Acme quarterly report", Description: "fantastic wonderful amazing growth"}}

	assert.NotEqual(t, s.Score(bare).Score, s.Score(described).Score)
}

func TestLabelThresholds(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{0.1, "neutral"}, // boundary is exclusive
		{0.1000001, "positive"},
		{-0.1, "neutral"},
		{-0.1000001, "negative"},
		{0.0, "neutral"},
		{0.9, "positive"},
		{-0.9, "negative"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, labelFor(tt.avg), "avg=%v", tt.avg)
	}
}
