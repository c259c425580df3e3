package interfaces

import "context"

// ModelClient sends a single free-text prompt to a generative model and
// returns its raw text response.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
