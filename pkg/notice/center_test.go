package notice_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootcamper/authkit/pkg/notice"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestCenter_ShowAndExpire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := notice.NewCenter(notice.NewMemoryStorage(), notice.WithClock(clock.Now))

	n, err := c.Error(ctx, "Invalid credentials")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, n.ID)
	assert.Equal(t, notice.TypeError, n.Type)
	assert.Equal(t, clock.Now().Add(notice.DefaultTTL), n.ExpiresAt)

	visible, err := c.Visible(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Invalid credentials", visible[0].Message)

	clock.Advance(notice.DefaultTTL)

	visible, err = c.Visible(ctx)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestCenter_WithoutTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	c := notice.NewCenter(nil, notice.WithTTL(0), notice.WithClock(clock.Now))

	n, err := c.Show(ctx, notice.TypeInfo, "hello")
	require.NoError(t, err)
	assert.True(t, n.ExpiresAt.IsZero())

	clock.Advance(24 * time.Hour)
	visible, err := c.Visible(ctx)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}

func TestCenter_Dismiss(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := notice.NewCenter(notice.NewMemoryStorage())

	first, err := c.Show(ctx, notice.TypeInfo, "first")
	require.NoError(t, err)
	second, err := c.Show(ctx, notice.TypeWarning, "second")
	require.NoError(t, err)

	require.NoError(t, c.Dismiss(ctx, first.ID))

	visible, err := c.Visible(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, second.ID, visible[0].ID)

	require.NoError(t, c.Clear(ctx))
	visible, err = c.Visible(ctx)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestCenter_EmptyMessage(t *testing.T) {
	t.Parallel()

	c := notice.NewCenter(nil)
	_, err := c.Show(context.Background(), notice.TypeError, "  ")
	assert.ErrorIs(t, err, notice.ErrEmptyMessage)
}

func TestCenter_DeliveryIsBestEffort(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var delivered []string
	d := notice.DelivererFunc(func(_ context.Context, n notice.Notice) error {
		delivered = append(delivered, n.Message)
		return errors.New("screen gone")
	})
	c := notice.NewCenter(nil, notice.WithDeliverer(d))

	_, err := c.Error(ctx, "boom")
	require.NoError(t, err)
	assert.Equal(t, []string{"boom"}, delivered)

	visible, err := c.Visible(ctx)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}

func TestMemoryStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := notice.NewMemoryStorage()

	assert.Error(t, s.Create(ctx, notice.Notice{Message: "no id"}))

	n := notice.Notice{ID: uuid.New(), Message: "x"}
	require.NoError(t, s.Create(ctx, n))
	assert.ErrorIs(t, s.Create(ctx, n), notice.ErrDuplicateNotice)

	list, err := s.List(ctx)
	require.NoError(t, err)
	list[0].Message = "mutated"

	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "x", list[0].Message, "List returns a copy")

	require.NoError(t, s.Delete(ctx, uuid.New()))
	require.NoError(t, s.Delete(ctx))
	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNotice_IsExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	assert.False(t, notice.Notice{}.IsExpired(now))
	assert.False(t, notice.Notice{ExpiresAt: now.Add(time.Second)}.IsExpired(now))
	assert.True(t, notice.Notice{ExpiresAt: now}.IsExpired(now))
}
