package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"market-pulse/internal/store"
	"market-pulse/internal/trace"
)

// Client calls the Google Gemini generateContent API.
type Client struct {
	cfg      *store.Config
	endpoint string
}

// New creates a Gemini client. The endpoint can be overridden via
// GEMINI_API_ENDPOINT for proxies.
func New(cfg *store.Config) *Client {
	endpoint := "https://generativelanguage.googleapis.com/v1beta"
	if ep := os.Getenv("GEMINI_API_ENDPOINT"); ep != "" {
		endpoint = ep
	}
	return &Client{cfg: cfg, endpoint: endpoint}
}

// Generate sends a single prompt and returns the model's text response.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "gemini-api-call")
	defer span.End()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", errors.New("GEMINI_API_KEY missing")
	}

	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"temperature":     c.cfg.LLM.Temperature,
			"maxOutputTokens": c.cfg.LLM.MaxTokens,
		},
	}
	bb, _ := json.Marshal(body)

	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, c.cfg.LLM.Model)
	req, _ := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bb))
	req.Header.Set("x-goog-api-key", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini http %d", resp.StatusCode)
	}

	var r struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}

	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no candidates")
	}

	return strings.TrimSpace(r.Candidates[0].Content.Parts[0].Text), nil
}
