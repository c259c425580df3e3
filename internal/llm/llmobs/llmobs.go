package llmobs

import (
	"context"

	"market-pulse/internal/interfaces"
	"market-pulse/internal/logger"
	"market-pulse/internal/trace"
)

// observableClient wraps a ModelClient with observability (logging & tracing)
type observableClient struct {
	client interfaces.ModelClient
}

// Compile-time interface check
var _ interfaces.ModelClient = (*observableClient)(nil)

// Wrap wraps a model client with observability middleware
func Wrap(client interfaces.ModelClient) interfaces.ModelClient {
	return &observableClient{client: client}
}

// Generate forwards the prompt with a span and request/response logging
func (oc *observableClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "llm.Generate")
	defer span.End()

	// Use the Skip variants so logs report the actual caller, not this wrapper
	logger.DebugSkip(ctx, 1, "Requesting model completion", "prompt_chars", len(prompt))

	response, err := oc.client.Generate(ctx, prompt)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Model completion failed", err, "prompt_chars", len(prompt))
		return "", err
	}

	logger.InfoSkip(ctx, 1, "Model completion received", "response_chars", len(response))
	return response, nil
}
