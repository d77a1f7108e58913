package events

import (
	"sync"
	"time"
)

// Topic identifies one dashboard region's invalidation signal. The SPA
// subscribes and re-fetches the matching list when its topic fires.

type Topic string

const (
	TopicOrdersChanged    Topic = "orders.changed"
	TopicProductsChanged  Topic = "products.changed"
	TopicMaterialsChanged Topic = "materials.changed"
	TopicClientsChanged   Topic = "clients.changed"
)

// Event is one typed change notification.
type Event struct {
	Topic    Topic     `json:"topic"`
	Action   string    `json:"action"`
	EntityID string    `json:"entity_id,omitempty"`
	At       time.Time `json:"at"`
}

// Publisher is the write side of the bus; use cases depend on this.
type Publisher interface {
	Publish(evt Event)
}

type subscriber struct {
	topics map[Topic]bool // nil means all topics
	ch     chan Event
}

// Bus is an in-process pub/sub fan-out for change notifications. Publish
// never blocks: a subscriber that cannot keep up drops events rather than
// stalling the write path.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]*subscriber
	nextID int
}

var _ Publisher = (*Bus)(nil)

const subscriberBuffer = 64

func NewBus() *Bus {
	return &Bus{subs: make(map[int]*subscriber)}
}

// Subscribe registers interest in the given topics (all topics when none are
// given). The returned cancel func must be called to release the channel.
func (b *Bus) Subscribe(topics ...Topic) (<-chan Event, func()) {
	sub := &subscriber{ch: make(chan Event, subscriberBuffer)}
	if len(topics) > 0 {
		sub.topics = make(map[Topic]bool, len(topics))
		for _, t := range topics {
			sub.topics[t] = true
		}
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if s, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(s.ch)
		}
		b.mu.Unlock()
	}
	return sub.ch, cancel
}

func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if sub.topics != nil && !sub.topics[evt.Topic] {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			// Slow subscriber; drop instead of blocking a mutation.
		}
	}
}
