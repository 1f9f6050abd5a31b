package eventbus_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/philly/arch-blog/postpage/internal/platform/eventbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements the logger.Logger interface for testing
type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

func (m *mockLogger) getErrors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.errors))
	copy(result, m.errors)
	return result
}

func TestBusSubscribeAndPublish(t *testing.T) {
	logger := &mockLogger{}
	bus := eventbus.NewBus(logger)
	topic := eventbus.Topic("test.event")

	var mu sync.Mutex
	var calls []string
	record := func(name string) eventbus.Handler {
		return func(ctx context.Context, event eventbus.Event) error {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, name+":"+event.Payload.(string))
			return nil
		}
	}
	bus.Subscribe(topic, record("handler1"))
	bus.Subscribe(topic, record("handler2"))
	bus.Subscribe(eventbus.Topic("other.event"), record("other"))

	bus.Publish(context.Background(), eventbus.Event{Topic: topic, Payload: "test message"})
	bus.Wait()

	mu.Lock()
	defer mu.Unlock()
	sort.Strings(calls)
	assert.Equal(t, []string{"handler1:test message", "handler2:test message"}, calls)
	assert.Empty(t, logger.getErrors())
}

func TestBusPublishWithNoSubscribers(t *testing.T) {
	logger := &mockLogger{}
	bus := eventbus.NewBus(logger)

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), eventbus.Event{Topic: "no.subscribers", Payload: "test"})
		bus.Wait()
	})
	assert.Empty(t, logger.getErrors())
}

func TestBusPublishWithHandlerError(t *testing.T) {
	logger := &mockLogger{}
	bus := eventbus.NewBus(logger)
	topic := eventbus.Topic("error.event")

	bus.Subscribe(topic, func(ctx context.Context, event eventbus.Event) error {
		return errors.New("handler failed")
	})

	bus.Publish(context.Background(), eventbus.Event{Topic: topic, Payload: "test"})
	bus.Wait()

	require.Len(t, logger.getErrors(), 1)
	assert.Equal(t, "event handler failed", logger.getErrors()[0])
}

func TestBusHandlersOutliveCanceledContext(t *testing.T) {
	bus := eventbus.NewBus(&mockLogger{})
	topic := eventbus.Topic("late.event")

	var sawCanceled bool
	bus.Subscribe(topic, func(ctx context.Context, event eventbus.Event) error {
		sawCanceled = ctx.Err() != nil
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	bus.Publish(ctx, eventbus.Event{Topic: topic})
	cancel()
	bus.Wait()

	assert.False(t, sawCanceled)
}
