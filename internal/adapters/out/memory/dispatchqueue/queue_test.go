package dispatchqueue_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/memory/dispatchqueue"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDispatchQueue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	queue := dispatchqueue.NewMemoryDispatchQueue()
	first, second := kernel.MustOrderNumber("ORD-1"), kernel.MustOrderNumber("ORD-2")

	require.NoError(t, queue.Push(ctx, first, "storage down", now))
	require.NoError(t, queue.Push(ctx, second, "storage down", now))
	require.NoError(t, queue.Push(ctx, first, "still down", now.Add(time.Minute)))

	pending, err := queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first, pending[0].OrderNumber)
	assert.Equal(t, 2, pending[0].Attempts)
	assert.Equal(t, "still down", pending[0].Reason)
	assert.Equal(t, now.Add(time.Minute), pending[0].FailedAt)
	assert.Equal(t, 1, pending[1].Attempts)

	require.NoError(t, queue.Remove(ctx, first))
	require.NoError(t, queue.Remove(ctx, first))

	pending, err = queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second, pending[0].OrderNumber)

	err = queue.Push(ctx, kernel.OrderNumber{}, "x", now)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
