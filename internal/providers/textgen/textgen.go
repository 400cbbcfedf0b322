// Package textgen abstracts the external text-generation service behind a
// small Generator contract so the outreach core can be tested with fakes.
package textgen

import "context"

// Request carries one generation call to the upstream model.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Generator produces free-form text for a prompt. Implementations perform
// network I/O and must honor context cancellation and deadlines.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Model() string
}
