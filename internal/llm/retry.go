package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetryPolicy bounds how many attempts a model call gets and how long we
// wait between them. Delay doubles per attempt: base, 2*base, 4*base, capped
// at MaxDelay.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy mirrors the pipeline defaults: three attempts, one
// second base delay.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second, MaxDelay: 30 * time.Second}
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = time.Second
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = 30 * time.Second
	}
	return p
}

// Do runs fn up to MaxAttempts times. It stops early on success, on a
// non-retryable error, or when ctx is done. The returned error is the last
// attempt's error.
func (p RetryPolicy) Do(ctx context.Context, log *slog.Logger, op string, fn func(ctx context.Context) error) error {
	p = p.normalized()
	if log == nil {
		log = slog.Default()
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return fmt.Errorf("%w (context: %v)", lastErr, err)
			}
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) {
			log.Warn("llm.retry.giving_up",
				"op", op, "attempt", attempt, "error", lastErr)
			return lastErr
		}
		if attempt == p.MaxAttempts {
			break
		}

		delay := p.delay(attempt)
		log.Warn("llm.retry.backoff",
			"op", op, "attempt", attempt, "max_attempts", p.MaxAttempts,
			"delay_ms", delay.Milliseconds(), "error", lastErr)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w (context: %v)", lastErr, ctx.Err())
		case <-timer.C:
		}
	}
	return fmt.Errorf("after %d attempts: %w", p.MaxAttempts, lastErr)
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	d := p.BaseDelay << (attempt - 1)
	if d > p.MaxDelay || d <= 0 {
		d = p.MaxDelay
	}
	return d
}
