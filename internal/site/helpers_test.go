package site_test

import (
	"context"
	"sync"

	"github.com/philly/arch-blog/postpage/internal/adapters/html"
	"github.com/philly/arch-blog/postpage/internal/platform/eventbus"
	"github.com/philly/arch-blog/postpage/internal/posts/application"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/philly/arch-blog/postpage/internal/site"
)

// recordingLogger implements the logger.Logger interface and keeps messages.
type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (m *recordingLogger) record(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
}

func (m *recordingLogger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {}
func (m *recordingLogger) Info(ctx context.Context, msg string, keysAndValues ...interface{}) {
	m.record(msg)
}
func (m *recordingLogger) Warn(ctx context.Context, msg string, keysAndValues ...interface{}) {
	m.record(msg)
}
func (m *recordingLogger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	m.record(msg)
}

func (m *recordingLogger) messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.msgs...)
}

type stubFetcher struct {
	posts domain.PostCollection
	err   error
}

func (s stubFetcher) FetchPosts(context.Context) (domain.PostCollection, error) {
	return s.posts, s.err
}

type countingFetcher struct {
	calls int
}

func (c *countingFetcher) FetchPosts(context.Context) (domain.PostCollection, error) {
	c.calls++
	return domain.PostCollection{domain.NewPost("n", nil)}, nil
}

func newPipeline(fetcher stubFetcher, log *recordingLogger) *site.Pipeline {
	page := application.NewPage(
		application.NewStaticPropsLoader(fetcher, log),
		application.NewPostListPage(html.NewPostRenderer(""), log),
	)
	return newPipelineFromPage(page)
}

func newPipelineFromPage(page *application.Page) *site.Pipeline {
	return site.NewPipeline(page, html.NewDocument("Test Blog"))
}

func newBuilder(fetcher stubFetcher, cfg site.Config) (*site.Builder, *eventbus.Bus, *recordingLogger) {
	log := &recordingLogger{}
	bus := eventbus.NewBus(log)
	return site.NewBuilder(newPipeline(fetcher, log), cfg, bus, log), bus, log
}

func samplePosts() domain.PostCollection {
	return domain.PostCollection{
		domain.NewPost("p1", map[string]any{
			domain.FieldTitle:   "First </script> post",
			domain.FieldContent: "<p>hello</p><script>alert(1)</script>",
		}),
		domain.NewPost("p2", map[string]any{domain.FieldTitle: "Second"}),
	}
}
