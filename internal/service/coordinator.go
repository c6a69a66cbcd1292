// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-card-keeper/internal/store"
)

// Coordinator serializes every use of the collection handle behind a single
// mutex and tracks the mutation flag that drives auto-sync.
//
// The flag answers one question: has the collection changed since the last
// successful sync? It is set under the gate by mutating operations and
// cleared only by a completed sync attempt. Failed syncs leave it set so the
// change is retried later.
type Coordinator struct {
	mu     sync.Mutex
	handle *store.Handle
	dirty  atomic.Bool
}

// NewCoordinator wraps the open collection handle. The handle must not be
// used outside the coordinator afterwards.
func NewCoordinator(h *store.Handle) *Coordinator {
	return &Coordinator{handle: h}
}

// WithAccess runs op while holding the exclusive gate. There is no
// acquisition timeout: callers queue until the current holder finishes.
// op's error is propagated unchanged.
func (c *Coordinator) WithAccess(_ context.Context, op func(h *store.Handle) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return op(c.handle)
}

// WithAccessResult is the generic result-returning variant of
// [Coordinator.WithAccess].
func WithAccessResult[T any](ctx context.Context, c *Coordinator, op func(h *store.Handle) (T, error)) (T, error) {
	var result T
	err := c.WithAccess(ctx, func(h *store.Handle) error {
		var opErr error
		result, opErr = op(h)
		return opErr
	})
	return result, err
}

// Dirty reports whether the collection changed since the last successful
// sync.
func (c *Coordinator) Dirty() bool {
	return c.dirty.Load()
}

// MarkDirty records that a mutation happened. Called by the bridge before
// the gate is released.
func (c *Coordinator) MarkDirty() {
	c.dirty.Store(true)
}

// clearDirty resets the mutation flag. Only the sync executor calls it, and
// only after a completed sync.
func (c *Coordinator) clearDirty() {
	c.dirty.Store(false)
}
