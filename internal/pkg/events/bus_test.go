package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	name string
	id   int
}

func (e testEvent) Name() string { return e.name }

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := NewBus(16, 2)

	var mu sync.Mutex
	var got []int
	bus.Subscribe("thing.happened", func(_ context.Context, e Event) {
		mu.Lock()
		got = append(got, e.(testEvent).id)
		mu.Unlock()
	})

	for i := 0; i < 5; i++ {
		bus.Publish(context.Background(), testEvent{name: "thing.happened", id: i})
	}
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, got, 5)
}

func TestBusIgnoresUnsubscribedEvents(t *testing.T) {
	bus := NewBus(4, 1)

	delivered := make(chan struct{}, 1)
	bus.Subscribe("wanted", func(_ context.Context, _ Event) {
		delivered <- struct{}{}
	})

	bus.Publish(context.Background(), testEvent{name: "unwanted"})
	bus.Publish(context.Background(), testEvent{name: "wanted"})
	bus.Close()

	select {
	case <-delivered:
	default:
		t.Fatal("subscribed event was not delivered")
	}
	assert.Empty(t, delivered)
}

func TestBusSurvivesPanickingListener(t *testing.T) {
	bus := NewBus(4, 1)

	var after bool
	var mu sync.Mutex
	bus.Subscribe("boom", func(_ context.Context, _ Event) {
		panic("listener bug")
	})
	bus.Subscribe("boom", func(_ context.Context, _ Event) {
		mu.Lock()
		after = true
		mu.Unlock()
	})

	bus.Publish(context.Background(), testEvent{name: "boom"})
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, after, "a panic in one listener must not stop the next")
}

func TestBusDropsWhenClosed(t *testing.T) {
	bus := NewBus(4, 1)
	bus.Close()

	// Publishing after Close must not panic or block.
	bus.Publish(context.Background(), testEvent{name: "late"})
}

func TestBusDetachesFromRequestContext(t *testing.T) {
	bus := NewBus(4, 1)

	seen := make(chan error, 1)
	bus.Subscribe("slow", func(ctx context.Context, _ Event) {
		seen <- ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	bus.Publish(ctx, testEvent{name: "slow"})
	cancel()

	select {
	case err := <-seen:
		require.NoError(t, err, "listener context must outlive the request")
	case <-time.After(time.Second):
		t.Fatal("listener never ran")
	}
	bus.Close()
}
