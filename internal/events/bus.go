// Package events provides the in-process notification bus that decouples
// lifecycle state changes from whatever reacts to them. It is synchronous,
// best-effort, and same-process only: no durability, no retry.
package events

import (
	"context"
	"log"
	"sync"
	"time"
)

// Event is the envelope delivered to every subscriber of a type.
type Event struct {
	Type      string         `json:"event_type"`
	Data      any            `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Handler reacts to a published event. A returned error is logged and
// isolated; it never reaches the publisher or later handlers.
type Handler func(ctx context.Context, evt Event) error

// Subscription identifies a single registration so it can be removed.
// Go funcs are not comparable, so removal is by token rather than by handler
// identity.
type Subscription struct {
	eventType string
	id        uint64
}

type registration struct {
	id uint64
	fn Handler
}

// Bus is a registry of handlers keyed by event-type name. All methods are
// safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string][]registration
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string][]registration)}
}

// Subscribe registers a handler for an event type. Handlers for a type run in
// registration order.
func (b *Bus) Subscribe(eventType string, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[eventType] = append(b.subs[eventType], registration{id: b.nextID, fn: fn})
	return Subscription{eventType: eventType, id: b.nextID}
}

// Unsubscribe removes exactly the registration behind the token. Unknown
// tokens are a no-op.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.subs[sub.eventType]
	for i, reg := range regs {
		if reg.id == sub.id {
			b.subs[sub.eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish delivers an event to every handler currently registered for the
// type, synchronously and in registration order. Publishing with zero
// subscribers is a no-op. Handler failures and panics are logged, never
// propagated.
func (b *Bus) Publish(ctx context.Context, eventType string, data any, metadata ...map[string]any) {
	evt := Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
	if len(metadata) > 0 {
		evt.Metadata = metadata[0]
	}

	b.mu.RLock()
	regs := make([]registration, len(b.subs[eventType]))
	copy(regs, b.subs[eventType])
	b.mu.RUnlock()

	for _, reg := range regs {
		b.dispatch(ctx, reg, evt)
	}
}

func (b *Bus) dispatch(ctx context.Context, reg registration, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[events] handler panic type=%s err=%v", evt.Type, r)
		}
	}()

	if err := reg.fn(ctx, evt); err != nil {
		log.Printf("[events] handler error type=%s err=%v", evt.Type, err)
	}
}

// Clear removes all handlers for the given types, or every handler when no
// type is given.
func (b *Bus) Clear(eventTypes ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(eventTypes) == 0 {
		b.subs = make(map[string][]registration)
		return
	}
	for _, t := range eventTypes {
		delete(b.subs, t)
	}
}

// SubscriberCount reports how many handlers are registered for a type.
func (b *Bus) SubscriberCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[eventType])
}
