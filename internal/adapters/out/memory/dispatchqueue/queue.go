// Package dispatchqueue is the in-memory dead-letter list of failed kitchen dispatches.
package dispatchqueue

import (
	"context"
	"slices"
	"sync"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

// MemoryDispatchQueue implements ports.DispatchQueue. Entries keep insertion order.
type MemoryDispatchQueue struct {
	mu      sync.Mutex
	entries []ports.DispatchFailure
}

func NewMemoryDispatchQueue() *MemoryDispatchQueue {
	return &MemoryDispatchQueue{}
}

func (q *MemoryDispatchQueue) Push(_ context.Context, number kernel.OrderNumber, reason string, failedAt time.Time) error {
	if err := number.Validate(); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if i := q.indexOf(number); i >= 0 {
		q.entries[i].Attempts++
		q.entries[i].Reason = reason
		q.entries[i].FailedAt = failedAt
		return nil
	}

	q.entries = append(q.entries, ports.DispatchFailure{
		OrderNumber: number,
		Reason:      reason,
		Attempts:    1,
		FailedAt:    failedAt,
	})
	return nil
}

func (q *MemoryDispatchQueue) Pending(_ context.Context) ([]ports.DispatchFailure, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return slices.Clone(q.entries), nil
}

func (q *MemoryDispatchQueue) Remove(_ context.Context, number kernel.OrderNumber) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if i := q.indexOf(number); i >= 0 {
		q.entries = slices.Delete(q.entries, i, i+1)
	}
	return nil
}

func (q *MemoryDispatchQueue) indexOf(number kernel.OrderNumber) int {
	return slices.IndexFunc(q.entries, func(f ports.DispatchFailure) bool {
		return f.OrderNumber.IsEqual(number)
	})
}
