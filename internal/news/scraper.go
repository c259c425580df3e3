package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"market-pulse/internal/logger"
	"market-pulse/internal/types"
)

// GoogleNewsScraper is an optional fallback headline source used when
// the primary news provider yields nothing. Best effort only.
type GoogleNewsScraper struct {
	timeout time.Duration
}

// NewGoogleNewsScraper creates the scraper with a per-request timeout.
func NewGoogleNewsScraper(timeout time.Duration) *GoogleNewsScraper {
	return &GoogleNewsScraper{timeout: timeout}
}

func (s *GoogleNewsScraper) Name() string { return "google-news" }

// FetchHeadlines scrapes Google News search results for the ticker.
func (s *GoogleNewsScraper) FetchHeadlines(ctx context.Context, ticker string, limit int) ([]types.NewsItem, error) {
	items := []types.NewsItem{}

	c := colly.NewCollector(
		colly.AllowedDomains("news.google.com", "www.google.com"),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	c.OnHTML("article", func(e *colly.HTMLElement) {
		if len(items) >= limit {
			return
		}

		title := strings.TrimSpace(e.ChildText("h3, h4"))
		link := e.ChildAttr("a", "href")
		if title == "" || link == "" {
			return
		}

		// Google News uses relative redirect URLs
		if strings.HasPrefix(link, "./articles/") {
			link = "https://news.google.com" + link[1:]
		}

		items = append(items, types.NewsItem{
			Title:       title,
			Description: snippetFrom(e.DOM),
			URL:         link,
		})
	})

	searchQuery := url.QueryEscape(ticker + " stock news")
	searchURL := fmt.Sprintf("https://news.google.com/search?q=%s&hl=en-US&gl=US&ceid=US:en", searchQuery)

	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("failed to scrape Google News: %w", err)
	}
	c.Wait()

	logger.Info(ctx, "Google News scraping completed", "ticker", ticker, "articles", len(items))
	return items, nil
}

// snippetFrom pulls a short description paragraph out of an article card.
func snippetFrom(sel *goquery.Selection) string {
	text := strings.TrimSpace(sel.Find("p, span.xBbh9").First().Text())
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}
