package site

import (
	"context"
	"fmt"

	"github.com/philly/arch-blog/postpage/internal/platform/eventbus"
	"github.com/philly/arch-blog/postpage/internal/platform/events"
	"github.com/philly/arch-blog/postpage/internal/platform/logger"
)

// BuildReporter logs build outcomes published on the bus.
type BuildReporter struct {
	logger logger.Logger
}

// NewBuildReporter creates a reporter and subscribes it to bus.
func NewBuildReporter(bus *eventbus.Bus, logger logger.Logger) *BuildReporter {
	r := &BuildReporter{logger: logger}
	bus.Subscribe(events.PageBuiltTopic, r.onPageBuilt)
	bus.Subscribe(events.BuildFailedTopic, r.onBuildFailed)
	return r
}

func (r *BuildReporter) onPageBuilt(ctx context.Context, event eventbus.Event) error {
	e, ok := event.Payload.(events.PageBuiltEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Topic)
	}
	r.logger.Info(ctx, "page built",
		"output_dir", e.OutputDir,
		"files", e.Files,
		"post_count", e.PostCount,
		"bytes", e.Bytes,
		"duration_ms", e.Duration.Milliseconds(),
	)
	return nil
}

func (r *BuildReporter) onBuildFailed(ctx context.Context, event eventbus.Event) error {
	e, ok := event.Payload.(events.BuildFailedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Topic)
	}
	r.logger.Error(ctx, "page build failed", "stage", e.Stage, "error", e.Err)
	return nil
}
