package noop

import (
	"context"

	"market-pulse/internal/logger"
)

// Client is a fallback model client used when no provider is configured.
type Client struct{}

// New returns a client that always answers with a neutral verdict.
func New() *Client {
	return &Client{}
}

// Generate implements the ModelClient interface.
func (c *Client) Generate(ctx context.Context, _ string) (string, error) {
	logger.Debug(ctx, "Noop model client called - always returns neutral")
	return `{"pulse": "neutral", "explanation": "No model provider configured."}`, nil
}
