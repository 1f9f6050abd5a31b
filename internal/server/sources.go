package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	badgerstore "github.com/philly/arch-blog/postpage/internal/adapters/badger"
	"github.com/philly/arch-blog/postpage/internal/adapters/file"
	"github.com/philly/arch-blog/postpage/internal/adapters/httpapi"
	"github.com/philly/arch-blog/postpage/internal/adapters/postgres"
	"github.com/philly/arch-blog/postpage/internal/adapters/sqlite"
	"github.com/philly/arch-blog/postpage/internal/platform/logger"
	"github.com/philly/arch-blog/postpage/internal/platform/seeder"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

func noop() {}

// provideFetcher opens the configured post source. The cleanup releases any
// connection or file handle it holds.
func provideFetcher(ctx context.Context, config Config, log logger.Logger) (ports.PostFetcher, func(), error) {
	switch config.PostsSource {
	case SourcePostgres:
		pool, cleanup, err := ConnectDatabase(ctx, config, log)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewPostsFetcher(pool, config.PostsLimit), cleanup, nil

	case SourceSQLite:
		db, err := sqlite.Open(ctx, config.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info(ctx, "opened sqlite post store", "path", config.SQLitePath)
		return sqlite.NewPostsFetcher(db, config.PostsLimit), func() { _ = db.Close() }, nil

	case SourceBadger:
		db, err := badgerstore.Open(config.BadgerDir)
		if err != nil {
			return nil, nil, err
		}
		log.Info(ctx, "opened badger post store", "dir", config.BadgerDir)
		return badgerstore.NewPostsFetcher(db, config.PostsLimit), func() { _ = db.Close() }, nil

	case SourceFile:
		return file.NewPostsFetcher(config.PostsFile), noop, nil

	case SourceHTTP:
		return httpapi.NewPostsFetcher(config.PostsAPIURL, config.PostsLimit, nil), noop, nil
	}
	return nil, nil, fmt.Errorf("unsupported posts source %q", config.PostsSource)
}

// providePinger exposes the fetcher's readiness check when it has one.
func providePinger(fetcher ports.PostFetcher) ports.Pinger {
	if p, ok := fetcher.(ports.Pinger); ok {
		return p
	}
	return nil
}

// provideSeeders builds the seeder for the configured store, fed from SEED_FILE.
func provideSeeders(ctx context.Context, config Config, log logger.Logger) ([]seeder.Seeder, func(), error) {
	source := file.NewPostsFetcher(config.SeedFile)

	switch config.PostsSource {
	case SourcePostgres:
		authorID := uuid.Nil
		if config.SeedAuthorID != "" {
			parsed, err := uuid.Parse(config.SeedAuthorID)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid SEED_AUTHOR_ID: %w", err)
			}
			authorID = parsed
		}
		pool, cleanup, err := ConnectDatabase(ctx, config, log)
		if err != nil {
			return nil, nil, err
		}
		return []seeder.Seeder{postgres.NewPostsSeeder(pool, source, authorID)}, cleanup, nil

	case SourceSQLite:
		db, err := sqlite.Open(ctx, config.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return []seeder.Seeder{sqlite.NewPostsSeeder(db, source)}, func() { _ = db.Close() }, nil

	case SourceBadger:
		db, err := badgerstore.Open(config.BadgerDir)
		if err != nil {
			return nil, nil, err
		}
		return []seeder.Seeder{badgerstore.NewPostsSeeder(db, source)}, func() { _ = db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("posts source %q cannot be seeded", config.PostsSource)
}
