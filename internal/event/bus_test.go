package event

import "testing"

func TestBusPublishDeliversInOrder(t *testing.T) {
	b := NewBus()

	var got []string
	b.Subscribe(TopicKeyEvent, func(topic Topic, payload any) {
		got = append(got, "first:"+payload.(string))
	})
	b.Subscribe(TopicKeyEvent, func(topic Topic, payload any) {
		got = append(got, "second:"+payload.(string))
	})

	b.Publish(TopicKeyEvent, "esc")

	want := []string{"first:esc", "second:esc"}
	if len(got) != len(want) {
		t.Fatalf("delivered %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBusTopicFiltering(t *testing.T) {
	b := NewBus()

	var keyEvents, reports int
	b.Subscribe(TopicKeyEvent, func(Topic, any) { keyEvents++ })
	b.Subscribe(TopicReport, func(Topic, any) { reports++ })

	b.Publish(TopicKeyEvent, nil)
	b.Publish(TopicKeyEvent, nil)
	b.Publish(TopicReport, nil)

	if keyEvents != 2 {
		t.Errorf("key event handler ran %d times, want 2", keyEvents)
	}
	if reports != 1 {
		t.Errorf("report handler ran %d times, want 1", reports)
	}
}

func TestBusTopicAll(t *testing.T) {
	b := NewBus()

	var topics []Topic
	b.Subscribe(TopicAll, func(topic Topic, payload any) {
		topics = append(topics, topic)
	})

	b.Publish(TopicKeyEvent, nil)
	b.Publish(TopicReport, nil)
	b.Publish(TopicLayer, nil)

	if len(topics) != 3 {
		t.Fatalf("wildcard handler ran %d times, want 3", len(topics))
	}
	if topics[0] != TopicKeyEvent || topics[1] != TopicReport || topics[2] != TopicLayer {
		t.Errorf("topics = %v", topics)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	b := NewBus()

	var calls int
	sub := b.Subscribe(TopicKeyEvent, func(Topic, any) { calls++ })

	b.Publish(TopicKeyEvent, nil)
	b.Unsubscribe(sub)
	b.Publish(TopicKeyEvent, nil)

	if calls != 1 {
		t.Errorf("handler ran %d times after unsubscribe, want 1", calls)
	}

	// Unknown subscription is a no-op.
	b.Unsubscribe(Subscription(999))
}

func TestBusStats(t *testing.T) {
	b := NewBus()
	b.Subscribe(TopicKeyEvent, func(Topic, any) {})
	b.Subscribe(TopicAll, func(Topic, any) {})

	b.Publish(TopicKeyEvent, nil)
	b.Publish(TopicReport, nil)

	stats := b.Stats()
	if stats.Published != 2 {
		t.Errorf("Published = %d, want 2", stats.Published)
	}
	// key.event hit both handlers, hid.report only the wildcard.
	if stats.Delivered != 3 {
		t.Errorf("Delivered = %d, want 3", stats.Delivered)
	}
}

func TestBusSubscribeDuringPublish(t *testing.T) {
	b := NewBus()

	var nested int
	b.Subscribe(TopicKeyEvent, func(Topic, any) {
		b.Subscribe(TopicKeyEvent, func(Topic, any) { nested++ })
	})

	b.Publish(TopicKeyEvent, nil)
	if nested != 0 {
		t.Errorf("handler added mid-publish ran %d times in same publish, want 0", nested)
	}

	b.Publish(TopicKeyEvent, nil)
	if nested != 1 {
		t.Errorf("nested handler ran %d times on next publish, want 1", nested)
	}
}
