// Package event provides a small synchronous publish/subscribe bus used to
// fan engine output out to the tester UI and metrics.
//
// Delivery is synchronous and in subscription order: Publish calls every
// matching handler before it returns. The bus spawns no goroutines, matching
// the single-threaded event loop of the engine.
package event

import (
	"sync"
	"sync/atomic"
)

// Topic identifies a stream of related events.
type Topic string

// Topics published by the engine.
const (
	// TopicKeyEvent carries hid.Event values, one per key transition.
	TopicKeyEvent Topic = "key.event"

	// TopicReport carries hid.Report values, one per synthesized emission.
	TopicReport Topic = "hid.report"

	// TopicLayer carries layout.Layer values when the active layer set
	// changes.
	TopicLayer Topic = "layer.changed"

	// TopicAll matches every topic.
	TopicAll Topic = "*"
)

// Handler receives published events.
type Handler func(topic Topic, payload any)

// Subscription identifies a registered handler.
type Subscription uint64

// Stats reports bus activity counters.
type Stats struct {
	Published uint64
	Delivered uint64
}

type subscriber struct {
	id      Subscription
	topic   Topic
	handler Handler
}

// Bus is a synchronous topic bus.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscriber
	nextID Subscription

	published atomic.Uint64
	delivered atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for a topic. TopicAll subscribes to every
// topic.
func (b *Bus) Subscribe(topic Topic, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs = append(b.subs, subscriber{id: b.nextID, topic: topic, handler: handler})
	return b.nextID
}

// Unsubscribe removes a handler. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers an event to every matching handler, in subscription
// order, before returning.
func (b *Bus) Publish(topic Topic, payload any) {
	b.published.Add(1)

	b.mu.RLock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		if s.topic == topic || s.topic == TopicAll {
			s.handler(topic, payload)
			b.delivered.Add(1)
		}
	}
}

// Stats returns activity counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Delivered: b.delivered.Load(),
	}
}
