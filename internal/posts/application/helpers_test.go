package application_test

import (
	"context"
	"errors"

	"github.com/philly/arch-blog/postpage/internal/posts/domain"
)

// mockLogger implements the logger.Logger interface for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {}

type stubFetcher struct {
	posts domain.PostCollection
	err   error
	calls int
}

func (s *stubFetcher) FetchPosts(ctx context.Context) (domain.PostCollection, error) {
	s.calls++
	return s.posts, s.err
}

// keyRenderer renders each post as "<key>:<title>".
type keyRenderer struct {
	failOn string
}

var errRenderer = errors.New("template exploded")

func (r keyRenderer) RenderPost(post domain.Post) (string, error) {
	if r.failOn != "" && post.ID == r.failOn {
		return "", errRenderer
	}
	return post.ID + ":" + post.String(domain.FieldTitle), nil
}

func postsAB() domain.PostCollection {
	return domain.PostCollection{
		domain.NewPost("1", map[string]any{"title": "A"}),
		domain.NewPost("2", map[string]any{"title": "B"}),
	}
}
