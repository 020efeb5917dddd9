package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootcamper/authkit/pkg/async"
)

func TestAsync_ReturnsResult(t *testing.T) {
	t.Parallel()

	future := async.Async(context.Background(), "user@example.com", func(_ context.Context, s string) (int, error) {
		time.Sleep(10 * time.Millisecond)
		return len(s), nil
	})

	n, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.True(t, future.IsComplete())
}

func TestAsync_PropagatesError(t *testing.T) {
	t.Parallel()

	expected := errors.New("boom")
	future := async.Async(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
		return 0, expected
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, expected)
}

func TestAsync_PreCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	future := async.Async(ctx, 1, func(_ context.Context, v int) (int, error) {
		called.Store(true)
		return v, nil
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called.Load())
}

func TestFuture_AwaitContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	future := async.Async(context.Background(), 0, func(_ context.Context, _ int) (string, error) {
		<-release
		return "done", nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := future.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, future.IsComplete())

	close(release)
	res, err := future.AwaitContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", res)
}

func TestFuture_AwaitWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("completes before timeout", func(t *testing.T) {
		t.Parallel()
		future := async.Async(context.Background(), 0, func(_ context.Context, _ int) (string, error) {
			return "ok", nil
		})
		res, err := future.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, "ok", res)
	})

	t.Run("times out", func(t *testing.T) {
		t.Parallel()
		future := async.Async(context.Background(), 0, func(_ context.Context, _ int) (string, error) {
			time.Sleep(200 * time.Millisecond)
			return "late", nil
		})
		res, err := future.AwaitWithTimeout(20 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
		assert.Empty(t, res)
	})
}

func TestResolved(t *testing.T) {
	t.Parallel()

	future := async.Resolved(42)
	assert.True(t, future.IsComplete())

	v, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestSettleAll_WaitsForEveryFuture(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var finished atomic.Int32
	failure := errors.New("fast failure")

	fast := async.Async(ctx, 0, func(_ context.Context, _ int) (int, error) {
		finished.Add(1)
		return 0, failure
	})
	slow := async.Async(ctx, 0, func(_ context.Context, _ int) (int, error) {
		time.Sleep(80 * time.Millisecond)
		finished.Add(1)
		return 2, nil
	})

	results, errs := async.SettleAll(fast, slow, nil)

	assert.Equal(t, int32(2), finished.Load())
	assert.Equal(t, []int{0, 2, 0}, results)
	assert.ErrorIs(t, errs[0], failure)
	assert.NoError(t, errs[1])
	assert.NoError(t, errs[2])
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("collects results in order", func(t *testing.T) {
		t.Parallel()
		futures := make([]*async.Future[int], 0, 3)
		for i := 1; i <= 3; i++ {
			futures = append(futures, async.Async(ctx, i, func(_ context.Context, v int) (int, error) {
				time.Sleep(time.Duration(4-v) * 10 * time.Millisecond)
				return v, nil
			}))
		}

		results, err := async.WaitAll(futures...)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, results)
	})

	t.Run("returns first error only after all settle", func(t *testing.T) {
		t.Parallel()
		failure := errors.New("invalid")
		var slowDone atomic.Bool

		failing := async.Async(ctx, 0, func(_ context.Context, _ int) (int, error) {
			return 0, failure
		})
		slow := async.Async(ctx, 0, func(_ context.Context, _ int) (int, error) {
			time.Sleep(50 * time.Millisecond)
			slowDone.Store(true)
			return 1, nil
		})

		_, err := async.WaitAll(failing, slow)
		assert.ErrorIs(t, err, failure)
		assert.True(t, slowDone.Load())
	})
}
