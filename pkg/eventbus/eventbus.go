// Package eventbus provides a minimal in-process publish/subscribe bus used
// to fan out ledger advisories and audit events.
package eventbus

import (
	"context"
	"sync"
)

// Event is anything that can name its own type.
type Event interface {
	Type() string
}

// Bus is the contract for publishing and subscribing to events.
type Bus interface {
	Publish(ctx context.Context, event Event)
	Subscribe(eventType string, handler func(context.Context, Event))
}

// SimpleBus is a synchronous, in-memory Bus. Handlers run on the caller's
// goroutine; a failing handler must not panic.
type SimpleBus struct {
	mu       sync.RWMutex
	handlers map[string][]func(context.Context, Event)
}

// NewSimpleBus creates an empty bus.
func NewSimpleBus() *SimpleBus {
	return &SimpleBus{handlers: make(map[string][]func(context.Context, Event))}
}

// Publish delivers the event to every subscriber of its type, in
// subscription order.
func (b *SimpleBus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, handler := range b.handlers[event.Type()] {
		handler(ctx, event)
	}
}

// Subscribe registers a handler for an event type.
func (b *SimpleBus) Subscribe(eventType string, handler func(context.Context, Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
