package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(ttl time.Duration, max int) (*Cache[string], *time.Time) {
	c := New[string](ttl, max, nil)
	now := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCache_MissThenHit(t *testing.T) {
	c, _ := newTestCache(time.Minute, 8)
	calls := 0
	compute := func(context.Context) (string, error) {
		calls++
		return "result", nil
	}

	v, hit, err := c.GetOrCompute(context.Background(), "fp1", compute)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "result", v)

	v, hit, err = c.GetOrCompute(context.Background(), "fp1", compute)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "result", v)
	assert.Equal(t, 1, calls)
}

func TestCache_FailuresNotCached(t *testing.T) {
	c, _ := newTestCache(time.Minute, 8)
	calls := 0

	_, _, err := c.GetOrCompute(context.Background(), "fp1", func(context.Context) (string, error) {
		calls++
		return "", errors.New("upstream down")
	})
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())

	v, hit, err := c.GetOrCompute(context.Background(), "fp1", func(context.Context) (string, error) {
		calls++
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, 2, calls)
}

func TestCache_TTLExpiry(t *testing.T) {
	c, now := newTestCache(time.Minute, 8)
	calls := 0
	compute := func(context.Context) (string, error) {
		calls++
		return fmt.Sprintf("v%d", calls), nil
	}

	_, _, err := c.GetOrCompute(context.Background(), "fp1", compute)
	require.NoError(t, err)

	*now = now.Add(59 * time.Second)
	v, hit, err := c.GetOrCompute(context.Background(), "fp1", compute)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "v1", v)

	*now = now.Add(2 * time.Second)
	v, hit, err = c.GetOrCompute(context.Background(), "fp1", compute)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "v2", v)
}

func TestCache_SizeEvictionDropsOldest(t *testing.T) {
	c, now := newTestCache(time.Hour, 2)

	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("fp%d", i)
		_, _, err := c.GetOrCompute(context.Background(), key, func(context.Context) (string, error) {
			return key, nil
		})
		require.NoError(t, err)
		*now = now.Add(time.Second)
	}

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("fp0")
	assert.False(t, ok, "oldest entry should have been evicted")
	_, ok = c.Get("fp2")
	assert.True(t, ok)
}

func TestCache_SingleFlight(t *testing.T) {
	c := New[string](time.Minute, 8, nil)

	var calls atomic.Int32
	gate := make(chan struct{})
	compute := func(context.Context) (string, error) {
		calls.Add(1)
		<-gate
		return "shared", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _, errs[i] = c.GetOrCompute(context.Background(), "fp1", compute)
		}(i)
	}

	// let the goroutines pile onto the flight, then release it
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i])
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_CanceledCallerDoesNotPoisonFlight(t *testing.T) {
	c := New[string](time.Minute, 8, nil)

	gate := make(chan struct{})
	compute := func(context.Context) (string, error) {
		<-gate
		return "finished", nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, _, err := c.GetOrCompute(ctx, "fp1", compute)
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	// the flight keeps going and lands in the cache
	close(gate)
	require.Eventually(t, func() bool {
		_, ok := c.Get("fp1")
		return ok
	}, time.Second, 5*time.Millisecond)
}
