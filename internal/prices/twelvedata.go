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

// TwelveData is the secondary daily-series provider, consulted only when
// the primary yields no usable series. Its list-shaped response is
// normalized into the same date-to-close mapping the primary produces.
type TwelveData struct {
	client *api.Client
	apiKey string
}

// NewTwelveData creates a Twelve Data provider. The API key is read from
// TWELVEDATA_KEY and falls back to the public demo key.
func NewTwelveData(timeout time.Duration) *TwelveData {
	apiKey := os.Getenv("TWELVEDATA_KEY")
	if apiKey == "" {
		apiKey = "demo"
	}
	return &TwelveData{
		client: api.NewClient(
			api.WithBaseURL("https://api.twelvedata.com"),
			api.WithTimeout(timeout),
		),
		apiKey: apiKey,
	}
}

func (p *TwelveData) Name() string { return "twelvedata" }

func (p *TwelveData) FetchDailySeries(ctx context.Context, ticker string) (types.PriceSeries, error) {
	path := fmt.Sprintf("/time_series?symbol=%s&interval=1day&outputsize=6&apikey=%s",
		url.QueryEscape(ticker), url.QueryEscape(p.apiKey))

	resp, err := p.client.GET(ctx, path)
	if err != nil {
		return nil, err
	}

	var body struct {
		Values []struct {
			Datetime string `json:"datetime"`
			Close    string `json:"close"`
		} `json:"values"`
	}
	if err := resp.ParseJSON(&body); err != nil {
		return nil, err
	}
	if body.Values == nil {
		return nil, fmt.Errorf("twelvedata: missing values for %s", ticker)
	}

	series := make(types.PriceSeries, len(body.Values))
	for _, v := range body.Values {
		close, err := strconv.ParseFloat(v.Close, 64)
		if err != nil || close <= 0 {
			continue
		}
		series[v.Datetime] = close
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("twelvedata: empty series for %s", ticker)
	}
	return series, nil
}
