package prices

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"market-pulse/internal/api"
	"market-pulse/internal/types"
)

// AlphaVantage is the primary daily-series provider.
type AlphaVantage struct {
	client *api.Client
	apiKey string
}

// NewAlphaVantage creates an Alpha Vantage provider. The API key is read
// from ALPHAVANTAGE_KEY.
func NewAlphaVantage(timeout time.Duration) *AlphaVantage {
	return &AlphaVantage{
		client: api.NewClient(
			api.WithBaseURL("https://www.alphavantage.co"),
			api.WithTimeout(timeout),
		),
		apiKey: os.Getenv("ALPHAVANTAGE_KEY"),
	}
}

func (p *AlphaVantage) Name() string { return "alphavantage" }

// FetchDailySeries queries TIME_SERIES_DAILY. A response without the
// daily-series mapping is treated as a provider failure.
func (p *AlphaVantage) FetchDailySeries(ctx context.Context, ticker string) (types.PriceSeries, error) {
	path := fmt.Sprintf("/query?function=TIME_SERIES_DAILY&symbol=%s&apikey=%s",
		url.QueryEscape(ticker), url.QueryEscape(p.apiKey))

	resp, err := p.client.GET(ctx, path)
	if err != nil {
		return nil, err
	}

	var body struct {
		Series map[string]struct {
			Close string `json:"4. close"`
		} `json:"Time Series (Daily)"`
	}
	if err := resp.ParseJSON(&body); err != nil {
		return nil, err
	}
	if body.Series == nil {
		return nil, fmt.Errorf("alphavantage: missing daily series for %s", ticker)
	}

	series := make(types.PriceSeries, len(body.Series))
	for date, rec := range body.Series {
		close, err := strconv.ParseFloat(rec.Close, 64)
		if err != nil || close <= 0 {
			continue
		}
		series[date] = close
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("alphavantage: empty daily series for %s", ticker)
	}
	return series, nil
}
