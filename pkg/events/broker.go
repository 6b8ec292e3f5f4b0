package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// subscriberBuffer bounds each subscriber's channel; publishes to a full
// subscriber drop the event instead of blocking the publisher.
const subscriberBuffer = 64

// Broker is the in-process broadcast fabric. Channels are created
// lazily; a publish with no subscribers is a no-op.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[int]chan []byte
	next int
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[int]chan []byte)}
}

// Subscribe registers a receiver on a channel. The returned cancel
// function removes the subscription and closes the receiver.
func (b *Broker) Subscribe(channel string) (<-chan []byte, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan []byte, subscriberBuffer)
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[int]chan []byte)
	}
	b.subs[channel][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[channel][id]; ok {
			delete(b.subs[channel], id)
			close(sub)
			if len(b.subs[channel]) == 0 {
				delete(b.subs, channel)
			}
		}
	}
	return ch, cancel
}

// Publish marshals the payload and broadcasts it to every subscriber on
// the channel. Never blocks: full subscribers lose the event.
func (b *Broker) Publish(channel string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling event payload: %w", err)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subs[channel] {
		select {
		case ch <- raw:
		default:
			slog.Warn("Dropping event for slow subscriber", "channel", channel, "subscriber", id)
		}
	}
	return nil
}
