package news

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"market-pulse/internal/api"
	"market-pulse/internal/types"
)

// NewsAPI fetches recent English-language headlines from newsapi.org.
type NewsAPI struct {
	client *api.Client
	apiKey string
}

// NewNewsAPI creates a NewsAPI provider. The API key is read from NEWSAPI_KEY.
func NewNewsAPI(timeout time.Duration) *NewsAPI {
	return &NewsAPI{
		client: api.NewClient(
			api.WithBaseURL("https://newsapi.org"),
			api.WithTimeout(timeout),
		),
		apiKey: os.Getenv("NEWSAPI_KEY"),
	}
}

func (p *NewsAPI) Name() string { return "newsapi" }

// FetchHeadlines returns up to limit recent articles matching the
// ticker, sorted by publish time. A response without the articles field
// maps to an empty list, not an error.
func (p *NewsAPI) FetchHeadlines(ctx context.Context, ticker string, limit int) ([]types.NewsItem, error) {
	query := url.QueryEscape(fmt.Sprintf("%s stock OR %s company", ticker, ticker))
	path := fmt.Sprintf("/v2/everything?q=%s&language=en&sortBy=publishedAt&pageSize=%d&apiKey=%s",
		query, limit, url.QueryEscape(p.apiKey))

	resp, err := p.client.GET(ctx, path)
	if err != nil {
		return nil, err
	}

	var body struct {
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
		} `json:"articles"`
	}
	if err := resp.ParseJSON(&body); err != nil {
		return nil, err
	}
	if body.Articles == nil {
		return []types.NewsItem{}, nil
	}

	items := make([]types.NewsItem, 0, limit)
	for _, a := range body.Articles {
		if len(items) >= limit {
			break
		}
		items = append(items, types.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
		})
	}
	return items, nil
}
