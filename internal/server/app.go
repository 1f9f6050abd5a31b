package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philly/arch-blog/postpage/internal/platform/eventbus"
	"github.com/philly/arch-blog/postpage/internal/platform/logger"
	"github.com/philly/arch-blog/postpage/internal/platform/seeder"
	"github.com/philly/arch-blog/postpage/internal/site"
)

type App struct {
	server *http.Server
	config Config
	logger logger.Logger
}

func NewApp(server *http.Server, config Config, logger logger.Logger) *App {
	return &App{
		server: server,
		config: config,
		logger: logger,
	}
}

// Run starts the application and handles graceful shutdown
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "starting server",
			"address", a.server.Addr,
			"posts_source", a.config.PostsSource,
		)
		serverErrors <- a.server.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		a.logger.Info(context.Background(), "shutting down server")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to gracefully shutdown server: %w", err)
		}
	}

	a.logger.Info(context.Background(), "server stopped")
	return nil
}

// BuildApp runs a single static build.
type BuildApp struct {
	builder *site.Builder
	bus     *eventbus.Bus
	logger  logger.Logger
}

// NewBuildApp creates the static build command. The reporter is taken only so
// that it is subscribed before the first build.
func NewBuildApp(builder *site.Builder, _ *site.BuildReporter, bus *eventbus.Bus, logger logger.Logger) *BuildApp {
	return &BuildApp{
		builder: builder,
		bus:     bus,
		logger:  logger,
	}
}

// Run builds the page once and waits for build event handlers to finish.
func (a *BuildApp) Run(ctx context.Context) (*site.Result, error) {
	defer a.bus.Wait()

	result, err := a.builder.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}
	return result, nil
}

// SeedApp loads fixture posts into the configured store.
type SeedApp struct {
	orchestrator *seeder.Orchestrator
}

func NewSeedApp(orchestrator *seeder.Orchestrator) *SeedApp {
	return &SeedApp{orchestrator: orchestrator}
}

func (a *SeedApp) Run(ctx context.Context) error {
	return a.orchestrator.RunAll(ctx)
}
