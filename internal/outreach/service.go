package outreach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadreach/internal/domain"
	"leadreach/internal/providers/textgen"
)

// Fixed model parameters for every generation call.
const (
	DefaultTimeout      = 30 * time.Second
	generateMaxTokens   = 200
	generateTemperature = 0.7
)

// Service runs the generation pipeline: normalize, build context, assemble
// the prompt, invoke the generator, post-process. It holds no mutable state
// beyond the injected generator, so concurrent calls are independent.
type Service struct {
	gen     textgen.Generator
	timeout time.Duration
}

// NewService builds a Service around an injected generator. A zero timeout
// falls back to DefaultTimeout.
func NewService(gen textgen.Generator, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{gen: gen, timeout: timeout}
}

// Model reports the underlying generator's model identifier.
func (s *Service) Model() string {
	if s.gen == nil {
		return ""
	}
	return s.gen.Model()
}

// Generate runs one full generation cycle. Validation failures surface as
// domain.ErrMissingRequiredField before any external call; upstream failures,
// timeouts and empty responses surface as domain.ErrGenerationFailed. The
// upstream detail stays in the wrapped error for logging and must not be
// shown to end users. There are no retries here; retry policy belongs to the
// caller.
func (s *Service) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedMessage, error) {
	normalized, err := Normalize(req)
	if err != nil {
		return nil, err
	}

	derived := BuildContext(normalized)
	prompt := BuildPrompt(normalized, derived)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.gen.Generate(callCtx, textgen.Request{
		System:      SystemPersona,
		Prompt:      prompt,
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil, fmt.Errorf("generation cancelled: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	return postProcess(raw, normalized), nil
}
