package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/philly/arch-blog/postpage/internal/adapters/file"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFetchPosts_JSON(t *testing.T) {
	path := writeFile(t, "posts.json", `[{"id":"1","title":"A"},{"id":"2","title":"B"}]`)

	posts, err := file.NewPostsFetcher(path).FetchPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, posts.IDs())
	assert.Equal(t, "B", posts[1].String(domain.FieldTitle))
}

func TestFetchPosts_YAML(t *testing.T) {
	path := writeFile(t, "posts.yaml", `
- id: b2
  title: Second first
  published_at: 2024-05-01T12:00:00Z
  tags: [go, web]
- id: 7
  title: Numeric id
`)

	posts, err := file.NewPostsFetcher(path).FetchPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"b2", "7"}, posts.IDs())
	ts, ok := posts[0].Time(domain.FieldPublishedAt)
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())
}

func TestFetchPosts_Errors(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		content    string
		shapeError bool
	}{
		{name: "yaml mapping instead of list", file: "posts.yml", content: "id: 1\ntitle: A\n", shapeError: true},
		{name: "json element without id", file: "posts.json", content: `[{"title":"A"}]`, shapeError: true},
		{name: "broken yaml", file: "posts.yaml", content: "- id: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			posts, err := file.NewPostsFetcher(path).FetchPosts(context.Background())

			require.Error(t, err)
			assert.Nil(t, posts)
			if tt.shapeError {
				assert.ErrorIs(t, err, domain.ErrShapeViolation)
			}
		})
	}
}

func TestFetchPosts_MissingFile(t *testing.T) {
	_, err := file.NewPostsFetcher(filepath.Join(t.TempDir(), "nope.json")).FetchPosts(context.Background())

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFetchPosts_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := file.NewPostsFetcher("unused.json").FetchPosts(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
