package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jcmexdev/modular-commerce/internal/pkg/metrics"
)

// Bus is the in-process Sink: a buffered channel drained by a fixed pool
// of workers. Listeners run decoupled from the request path; ordering is
// only the order of publication, and nothing is redelivered after a
// crash — consumers needing durability subscribe via the Kafka sink.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
	ch        chan envelope
	wg        sync.WaitGroup
	closed    bool
}

// NewBus starts a bus with the given buffer size and worker count.
func NewBus(buffer, workers int) *Bus {
	b := &Bus{
		listeners: make(map[string][]Listener),
		ch:        make(chan envelope, buffer),
	}
	for i := 0; i < workers; i++ {
		b.wg.Add(1)
		go b.work()
	}
	return b
}

// Subscribe registers a listener for events with the given name.
// Call during wiring, before the first Publish.
func (b *Bus) Subscribe(name string, l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[name] = append(b.listeners[name], l)
}

// Publish enqueues the event without blocking the caller. When the buffer
// is full the event is dropped with a log line — the contract is
// fire-and-forget, not at-least-once.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		slog.WarnContext(ctx, "event bus closed, dropping event", "event", e.Name())
		return
	}

	// Detach from the request context so the listener is not cancelled
	// when the HTTP response is sent, while keeping tracing metadata.
	env := envelope{ctx: context.WithoutCancel(ctx), event: e}
	select {
	case b.ch <- env:
	default:
		metrics.EventsDropped.Inc()
		slog.WarnContext(ctx, "event bus full, dropping event", "event", e.Name())
	}
}

// Close stops accepting events and drains what is already queued.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	close(b.ch)
	b.wg.Wait()
}

func (b *Bus) work() {
	defer b.wg.Done()
	for env := range b.ch {
		b.mu.RLock()
		listeners := b.listeners[env.event.Name()]
		b.mu.RUnlock()

		for _, l := range listeners {
			b.dispatch(env.ctx, env.event, l)
		}
	}
}

func (b *Bus) dispatch(ctx context.Context, e Event, l Listener) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "event listener panicked", "event", e.Name(), "panic", r)
		}
	}()
	l(ctx, e)
}
