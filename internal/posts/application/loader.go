package application

import (
	"context"
	"time"

	"github.com/philly/arch-blog/postpage/internal/platform/logger"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

// StaticPropsLoader fetches the posts once per build or revalidation cycle and
// packages them for the page.
type StaticPropsLoader struct {
	fetcher ports.PostFetcher
	logger  logger.Logger
}

// NewStaticPropsLoader creates a new static props loader
func NewStaticPropsLoader(fetcher ports.PostFetcher, logger logger.Logger) *StaticPropsLoader {
	return &StaticPropsLoader{
		fetcher: fetcher,
		logger:  logger,
	}
}

// LoadStaticProps calls the fetcher exactly once and returns
// {props: {posts: R}}. A fetch failure is returned wrapped in ErrFetchFailed
// with the original error still reachable; there is no retry and no fallback
// to an empty list.
func (l *StaticPropsLoader) LoadStaticProps(ctx context.Context) (*domain.StaticProps, error) {
	start := time.Now()
	l.logger.Debug(ctx, "loading static props")

	posts, err := l.fetcher.FetchPosts(ctx)
	if err != nil {
		l.logger.Error(ctx, "failed to fetch posts", "error", err)
		return nil, wrap(ErrFetchFailed, err)
	}

	l.logger.Info(ctx, "static props loaded",
		"post_count", len(posts),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &domain.StaticProps{Props: domain.NewPropsPayload(posts)}, nil
}
