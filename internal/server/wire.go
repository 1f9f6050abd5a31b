//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"
	"github.com/philly/arch-blog/postpage/internal/adapters/html"
	"github.com/philly/arch-blog/postpage/internal/adapters/rest"
	"github.com/philly/arch-blog/postpage/internal/platform/eventbus"
	"github.com/philly/arch-blog/postpage/internal/platform/logger"
	"github.com/philly/arch-blog/postpage/internal/platform/seeder"
	"github.com/philly/arch-blog/postpage/internal/posts/application"
	"github.com/philly/arch-blog/postpage/internal/site"
)

var baseSet = wire.NewSet(
	// Bootstrap phase
	logger.ProviderSet,
	LoadConfig,
	provideLoggerConfig,
)

var pageSet = wire.NewSet(
	provideFetcher,
	application.ProviderSet,
	html.ProviderSet,
	provideSiteTitle,
	providePermalinkPrefix,
	site.NewPipeline,
)

// InitializeApp creates the HTTP host with all dependencies
func InitializeApp(ctx context.Context) (*App, func(), error) {
	wire.Build(
		baseSet,
		pageSet,

		// REST handlers
		rest.ProviderSet,
		provideVersion,
		providePinger,

		NewHTTPServer,
		NewApp,
	)

	return nil, nil, nil
}

// InitializeBuilder creates the static build command
func InitializeBuilder(ctx context.Context) (*BuildApp, func(), error) {
	wire.Build(
		baseSet,
		pageSet,

		eventbus.ProviderSet,
		provideSiteConfig,
		site.NewBuilder,
		site.NewBuildReporter,

		NewBuildApp,
	)

	return nil, nil, nil
}

// InitializeSeeder creates the seed command for the configured store
func InitializeSeeder(ctx context.Context) (*SeedApp, func(), error) {
	wire.Build(
		baseSet,

		provideSeeders,
		seeder.NewOrchestrator,

		NewSeedApp,
	)

	return nil, nil, nil
}
