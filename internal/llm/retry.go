package llm

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cenkalti/backoff/v5"

	"resume-matcher/internal/shared/metrics"
)

// RetryConfig controls how rate-limited calls are retried.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Multiplier   float64
	// CallTimeout bounds a single attempt. Zero means no per-attempt bound.
	CallTimeout time.Duration
}

// DefaultRetryConfig returns three attempts starting at one second, doubling.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		Multiplier:   2,
	}
}

func (c RetryConfig) normalized() RetryConfig {
	def := DefaultRetryConfig()
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = def.MaxAttempts
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = def.InitialDelay
	}
	if c.Multiplier < 1 {
		c.Multiplier = def.Multiplier
	}
	return c
}

// Result is the outcome of a retried generation.
type Result struct {
	Text     string
	Outcome  Outcome
	Attempts int
	Err      error
}

// Retrier wraps a Generator and retries rate-limited calls with exponential
// backoff. Any other error is returned after the first attempt.
type Retrier struct {
	gen Generator
	cfg RetryConfig
}

// NewRetrier constructs a Retrier around gen.
func NewRetrier(gen Generator, cfg RetryConfig) *Retrier {
	return &Retrier{gen: gen, cfg: cfg.normalized()}
}

// Do runs prompt through the wrapped generator.
func (r *Retrier) Do(ctx context.Context, prompt string) Result {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.cfg.InitialDelay
	bo.Multiplier = r.cfg.Multiplier
	bo.RandomizationFactor = 0
	bo.MaxInterval = r.cfg.InitialDelay * time.Duration(1<<min(r.cfg.MaxAttempts, 16))

	attempts := 0
	op := func() (string, error) {
		attempts++
		metrics.IncLLMCall()
		text, err := r.call(ctx, prompt)
		if err == nil {
			return text, nil
		}
		if Classify(err) != OutcomeRetryable {
			return "", backoff.Permanent(err)
		}
		return "", err
	}

	text, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(r.cfg.MaxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			metrics.IncLLMRetry()
			log.Printf("llm retry attempt=%d next_delay=%s error=%v", attempts, next, err)
		}),
	)
	if err == nil {
		return Result{Text: text, Outcome: OutcomeOK, Attempts: attempts}
	}

	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		err = perm.Unwrap()
	}
	if Classify(err) == OutcomeRetryable {
		metrics.IncLLMRateLimited()
		return Result{
			Outcome:  OutcomeRetryable,
			Attempts: attempts,
			Err:      &ExhaustedError{Attempts: attempts, Last: err},
		}
	}
	return Result{Outcome: OutcomeFatal, Attempts: attempts, Err: err}
}

// Generate implements Generator.
func (r *Retrier) Generate(ctx context.Context, prompt string) (string, error) {
	res := r.Do(ctx, prompt)
	return res.Text, res.Err
}

func (r *Retrier) call(ctx context.Context, prompt string) (string, error) {
	if r.cfg.CallTimeout <= 0 {
		return r.gen.Generate(ctx, prompt)
	}
	callCtx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()
	return r.gen.Generate(callCtx, prompt)
}

var _ Generator = (*Retrier)(nil)
