package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestRetryDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := fastPolicy(3).Do(context.Background(), nil, "analyze", func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryDo_RetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	err := fastPolicy(3).Do(context.Background(), nil, "analyze", func(context.Context) error {
		calls++
		if calls < 3 {
			return &TransientCallError{Op: "analyze", Err: errors.New("rate limited")}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	boom := &TransientCallError{Op: "analyze", Err: errors.New("upstream 503")}
	err := fastPolicy(3).Do(context.Background(), nil, "analyze", func(context.Context) error {
		calls++
		return boom
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)

	var transient *TransientCallError
	assert.True(t, errors.As(err, &transient))
}

func TestRetryDo_ConfigurationErrorNotRetried(t *testing.T) {
	calls := 0
	err := fastPolicy(5).Do(context.Background(), nil, "analyze", func(context.Context) error {
		calls++
		return &ConfigurationError{Reason: "model has no vision input"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestRetryDo_SchemaValidationErrorRetried(t *testing.T) {
	calls := 0
	err := fastPolicy(2).Do(context.Background(), nil, "analyze", func(context.Context) error {
		calls++
		return &SchemaValidationError{Err: errors.New("missing required field")}
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryDo_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := RetryPolicy{MaxAttempts: 5, BaseDelay: time.Minute}.Do(ctx, nil, "analyze", func(context.Context) error {
		calls++
		cancel()
		return &TransientCallError{Op: "analyze", Err: errors.New("timeout")}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var transient *TransientCallError
	assert.True(t, errors.As(err, &transient))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(&ConfigurationError{Reason: "no key"}))
	assert.False(t, IsRetryable(context.Canceled))
	assert.True(t, IsRetryable(&TransientCallError{Op: "x", Err: errors.New("e")}))
	assert.True(t, IsRetryable(&SchemaValidationError{Err: errors.New("e")}))
	assert.True(t, IsRetryable(errors.New("unclassified")))
}

func TestRetryPolicy_DelayCapped(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 10, BaseDelay: time.Second, MaxDelay: 4 * time.Second}.normalized()
	assert.Equal(t, time.Second, p.delay(1))
	assert.Equal(t, 2*time.Second, p.delay(2))
	assert.Equal(t, 4*time.Second, p.delay(3))
	assert.Equal(t, 4*time.Second, p.delay(4))
}
