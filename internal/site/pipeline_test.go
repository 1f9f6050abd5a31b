package site_test

import (
	"context"
	"strings"
	"testing"

	"github.com/philly/arch-blog/postpage/internal/adapters/html"
	"github.com/philly/arch-blog/postpage/internal/posts/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineRun(t *testing.T) {
	pipeline := newPipeline(stubFetcher{posts: samplePosts()}, &recordingLogger{})

	artifacts, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"p1", "p2"}, application.Keys(artifacts.Units))
	assert.Equal(t, []string{"p1", "p2"}, artifacts.Props.Props.Posts.IDs())
	assert.Contains(t, string(artifacts.HTML), `id="`+html.PropsScriptID+`"`)
	assert.True(t, strings.HasPrefix(string(artifacts.PropsJSON), `{"props":{"posts":[`))

	// the embedded props must not terminate the script element early
	assert.Equal(t, 1, strings.Count(string(artifacts.HTML), "</script>"))
}

func TestPipelineRun_FreshCyclePerCall(t *testing.T) {
	fetcher := &countingFetcher{}
	page := application.NewPage(
		application.NewStaticPropsLoader(fetcher, &recordingLogger{}),
		application.NewPostListPage(html.NewPostRenderer(""), &recordingLogger{}),
	)
	pipeline := newPipelineFromPage(page)

	for i := 0; i < 3; i++ {
		_, err := pipeline.Run(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, fetcher.calls)
}
