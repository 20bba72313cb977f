package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Generator abstracts text-generation providers.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Embedder abstracts embedding providers.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// RateLimitError marks a provider response that signalled quota or rate
// exhaustion. It is the only error class the Retrier retries.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	if e.Err == nil {
		return e.Provider + ": rate limited"
	}
	return fmt.Sprintf("%s: rate limited: %v", e.Provider, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// ExhaustedError is returned once every attempt was rate limited.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("API quota exceeded after %d attempts. Please try again later. Original error: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }

// ErrEmptyResponse is returned when a provider answers without any text.
var ErrEmptyResponse = errors.New("llm returned empty response")

// Outcome classifies the result of a generation call.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeRetryable
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeRetryable:
		return "retryable"
	default:
		return "fatal"
	}
}

// Classify maps err to an Outcome.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return OutcomeRetryable
	}
	return OutcomeFatal
}
