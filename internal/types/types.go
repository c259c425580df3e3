package types

// PriceSeries maps a trading date (YYYY-MM-DD) to that day's closing price.
// Closing prices are always > 0; dates are unique by construction.
type PriceSeries map[string]float64

// MomentumResult holds up to 5 day-over-day percentage returns, most
// recent first, and their arithmetic mean. Both are rounded to 2 decimals.
type MomentumResult struct {
	Returns []float64 `json:"returns"`
	Score   float64   `json:"score"`
}

// NewsItem is a single headline returned by a news provider.
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// SentimentSummary is the lexical sentiment over a set of headlines.
type SentimentSummary struct {
	Score   float64 `json:"score"`
	Label   string  `json:"label"`
	Summary string  `json:"summary"`
}

// PulseVerdict is the model's short-term outlook for a ticker. This is
// the unit stored in the verdict cache.
type PulseVerdict struct {
	Pulse       string           `json:"pulse"`
	Explanation string           `json:"explanation"`
	Sentiment   SentimentSummary `json:"news_sentiment"`
}

// PulseResponse is the composite object returned for a market-pulse request.
type PulseResponse struct {
	Ticker      string           `json:"ticker"`
	AsOf        string           `json:"as_of"`
	Momentum    MomentumResult   `json:"momentum"`
	News        []NewsItem       `json:"news"`
	Pulse       string           `json:"pulse"`
	Explanation string           `json:"llm_explanation"`
	Sentiment   SentimentSummary `json:"news_sentiment"`
}
