package events

import (
	"testing"
	"time"
)

func TestBus_SubscribeAndPublish(t *testing.T) {
	t.Run("subscriber receives matching topic", func(t *testing.T) {
		bus := NewBus()
		ch, cancel := bus.Subscribe(TopicOrdersChanged)
		defer cancel()

		bus.Publish(Event{Topic: TopicOrdersChanged, Action: "created", EntityID: "ord-1", At: time.Now()})

		select {
		case evt := <-ch:
			if evt.Topic != TopicOrdersChanged || evt.EntityID != "ord-1" {
				t.Fatalf("unexpected event: %+v", evt)
			}
		case <-time.After(time.Second):
			t.Fatalf("expected event, got none")
		}
	})

	t.Run("topic filter drops other topics", func(t *testing.T) {
		bus := NewBus()
		ch, cancel := bus.Subscribe(TopicProductsChanged)
		defer cancel()

		bus.Publish(Event{Topic: TopicOrdersChanged, Action: "created"})

		select {
		case evt := <-ch:
			t.Fatalf("unexpected event: %+v", evt)
		default:
		}
	})

	t.Run("no topics means all topics", func(t *testing.T) {
		bus := NewBus()
		ch, cancel := bus.Subscribe()
		defer cancel()

		bus.Publish(Event{Topic: TopicClientsChanged, Action: "deleted"})
		bus.Publish(Event{Topic: TopicMaterialsChanged, Action: "updated"})

		for i := 0; i < 2; i++ {
			select {
			case <-ch:
			case <-time.After(time.Second):
				t.Fatalf("expected 2 events, got %d", i)
			}
		}
	})

	t.Run("publish does not block on a full subscriber", func(t *testing.T) {
		bus := NewBus()
		_, cancel := bus.Subscribe(TopicOrdersChanged)
		defer cancel()

		done := make(chan struct{})
		go func() {
			for i := 0; i < subscriberBuffer*2; i++ {
				bus.Publish(Event{Topic: TopicOrdersChanged})
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("publish blocked on slow subscriber")
		}
	})

	t.Run("cancel closes the channel", func(t *testing.T) {
		bus := NewBus()
		ch, cancel := bus.Subscribe(TopicOrdersChanged)
		cancel()

		if _, ok := <-ch; ok {
			t.Fatalf("expected closed channel")
		}

		// Publishing after cancel must not panic.
		bus.Publish(Event{Topic: TopicOrdersChanged})
	})
}
