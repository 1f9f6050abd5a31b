package ports

import (
	"context"

	"github.com/philly/arch-blog/postpage/internal/posts/domain"
)

// PostFetcher is the driven port for whatever data source holds the posts.
// Implementations own ordering, retries and error types; callers treat the
// returned collection as read-only.
type PostFetcher interface {
	FetchPosts(ctx context.Context) (domain.PostCollection, error)
}

// Pinger is implemented by fetchers backed by a connection that can be probed
// for readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}
