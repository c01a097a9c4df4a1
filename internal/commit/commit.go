// Package commit defers side effects until the request transaction commits.
package commit

import (
	"context"
	"sync"
)

// Hooks collects functions to run once the transaction has committed.
type Hooks struct {
	mu  sync.Mutex
	fns []func()
}

type hooksKey struct{}

// WithHooks returns a copy of ctx carrying a fresh Hooks.
func WithHooks(ctx context.Context) (context.Context, *Hooks) {
	h := &Hooks{}
	return context.WithValue(ctx, hooksKey{}, h), h
}

// AfterCommit registers fn on the Hooks in ctx. Without a transaction in
// flight there is nothing to wait for, so fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	h, ok := ctx.Value(hooksKey{}).(*Hooks)
	if !ok {
		fn()
		return
	}

	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

// Run calls the registered functions in registration order and clears them.
func (h *Hooks) Run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Discard drops the registered functions without calling them.
func (h *Hooks) Discard() {
	h.mu.Lock()
	h.fns = nil
	h.mu.Unlock()
}
