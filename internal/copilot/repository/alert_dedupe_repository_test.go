package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryAlertDedupe(t *testing.T) {
	repo := NewInMemoryAlertDedupeRepository()
	ctx := context.Background()

	ok, err := repo.Acquire(ctx, "copilot:alert:1:AAPL", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Acquire(ctx, "copilot:alert:1:AAPL", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, _ = repo.Acquire(ctx, "copilot:alert:2:AAPL", time.Hour)
	assert.True(t, ok)

	ok, _ = repo.Acquire(ctx, "short", time.Millisecond)
	require.True(t, ok)
	time.Sleep(5 * time.Millisecond)
	ok, _ = repo.Acquire(ctx, "short", time.Millisecond)
	assert.True(t, ok, "expired keys can be claimed again")
}
