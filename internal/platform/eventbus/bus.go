package eventbus

import (
	"context"
	"sync"

	"github.com/philly/arch-blog/postpage/internal/platform/logger"
)

// Bus manages subscriptions and event dispatching.
type Bus struct {
	subscriptions map[Topic][]Handler
	mu            sync.RWMutex // Protects the subscriptions map
	inflight      sync.WaitGroup
	logger        logger.Logger
}

// NewBus creates a new event bus.
func NewBus(logger logger.Logger) *Bus {
	return &Bus{
		subscriptions: make(map[Topic][]Handler),
		logger:        logger,
	}
}

// Subscribe adds a handler for a specific topic.
func (b *Bus) Subscribe(topic Topic, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions[topic] = append(b.subscriptions[topic], handler)
}

// Publish sends an event to all subscribers of a topic (Fire-and-Forget).
// Handlers run on their own goroutines and detached from ctx cancellation.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	handlers := b.subscriptions[event.Topic]
	if len(handlers) == 0 {
		return
	}

	hctx := context.WithoutCancel(ctx)
	for _, handler := range handlers {
		b.inflight.Add(1)
		go func(h Handler) {
			defer b.inflight.Done()
			if err := h(hctx, event); err != nil {
				b.logger.Error(hctx, "event handler failed", "topic", event.Topic, "error", err)
			}
		}(handler)
	}
}

// Wait blocks until every handler started by Publish has returned.
// Short-lived commands call it before exiting.
func (b *Bus) Wait() {
	b.inflight.Wait()
}
