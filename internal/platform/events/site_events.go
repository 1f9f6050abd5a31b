package events

import (
	"time"

	"github.com/philly/arch-blog/postpage/internal/platform/eventbus"
)

// Event topics for page builds
const (
	PageBuiltTopic   eventbus.Topic = "site.page_built"
	BuildFailedTopic eventbus.Topic = "site.build_failed"
)

// PageBuiltEvent is published after a build wrote its output files
type PageBuiltEvent struct {
	OutputDir  string
	Files      []string
	PostCount  int
	Bytes      int64
	Duration   time.Duration
	OccurredAt time.Time
}

// BuildFailedEvent is published when a build stops before writing output
type BuildFailedEvent struct {
	Stage      string // load, render, document or write
	Err        error
	OccurredAt time.Time
}
