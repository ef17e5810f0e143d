// Package events carries domain events from use cases to their listeners.
//
// Publication is fire-and-forget: the caller gets its HTTP response
// without waiting for any listener, and no delivery guarantee is made.
// Listeners must therefore be idempotent. Use cases publish only after
// their persistence call has committed.
package events

import (
	"context"
	"time"
)

// Event is a domain event. Name identifies the event type for routing;
// the concrete struct is the payload.
type Event interface {
	Name() string
}

// Sink is the port every use case publishes through.
type Sink interface {
	Publish(ctx context.Context, e Event)
}

// Listener consumes one event. The context carries tracing metadata but
// is detached from the originating request, so a slow listener never
// holds a response hostage.
type Listener func(ctx context.Context, e Event)

// envelope pairs an event with the (detached) context it was published
// under and its publication time.
type envelope struct {
	ctx         context.Context
	event       Event
	publishedAt time.Time
}
