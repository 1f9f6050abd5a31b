package seeder

import (
	"context"
	"fmt"

	"github.com/philly/arch-blog/postpage/internal/platform/logger"
)

// Seeder fills one store with fixture data. Seeding must be idempotent.
type Seeder interface {
	// Name returns the name of the seeder for logging
	Name() string

	// Seed writes the fixtures
	Seed(ctx context.Context) error
}

// Orchestrator runs seeders in order and stops at the first failure.
type Orchestrator struct {
	seeders []Seeder
	logger  logger.Logger
}

// NewOrchestrator creates a new seeder orchestrator
func NewOrchestrator(logger logger.Logger, seeders []Seeder) *Orchestrator {
	return &Orchestrator{
		seeders: seeders,
		logger:  logger,
	}
}

// RunAll executes all registered seeders in order
func (o *Orchestrator) RunAll(ctx context.Context) error {
	o.logger.Info(ctx, "starting data seeding", "seeder_count", len(o.seeders))

	for _, s := range o.seeders {
		o.logger.Info(ctx, "running seeder", "seeder", s.Name())

		if err := s.Seed(ctx); err != nil {
			o.logger.Error(ctx, "seeder failed",
				"seeder", s.Name(),
				"error", err,
			)
			return fmt.Errorf("seeder %s failed: %w", s.Name(), err)
		}

		o.logger.Info(ctx, "seeder completed successfully", "seeder", s.Name())
	}

	o.logger.Info(ctx, "all seeders completed successfully")
	return nil
}
