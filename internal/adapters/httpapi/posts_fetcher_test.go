package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/philly/arch-blog/postpage/internal/adapters/httpapi"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listBody = `{
  "data": [
    {
      "id": "7d6f8c7e-3b1a-4e8e-9d55-0c0f5a6b2f10",
      "title": "Hexagonal blogs",
      "slug": "hexagonal-blogs",
      "excerpt": "Ports first",
      "status": "published",
      "authorId": "0b9f2f0a-7c55-4b8e-a6f1-4c2d1c9f7e21",
      "authorName": "philly",
      "publishedAt": "2024-03-02T10:00:00Z",
      "createdAt": "2024-03-01T10:00:00Z",
      "viewCount": 0
    },
    {
      "id": "1f0e6c2a-9a4b-4d3c-8e7f-6a5b4c3d2e1f",
      "title": "Older",
      "slug": "older",
      "excerpt": "",
      "status": "published",
      "authorId": "0b9f2f0a-7c55-4b8e-a6f1-4c2d1c9f7e21",
      "publishedAt": "2023-01-01T00:00:00Z",
      "createdAt": "2023-01-01T00:00:00Z",
      "viewCount": 3
    }
  ],
  "meta": {"totalItems": 2, "itemsPerPage": 20, "currentPage": 1, "totalPages": 1}
}`

func TestFetchPosts(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/posts", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listBody))
	}))
	defer srv.Close()

	posts, err := httpapi.NewPostsFetcher(srv.URL+"/", 5, nil).FetchPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"published"}, gotQuery["status"])
	assert.Equal(t, []string{"5"}, gotQuery["limit"])

	require.Len(t, posts, 2)
	assert.Equal(t, []string{
		"7d6f8c7e-3b1a-4e8e-9d55-0c0f5a6b2f10",
		"1f0e6c2a-9a4b-4d3c-8e7f-6a5b4c3d2e1f",
	}, posts.IDs())
	assert.Equal(t, "Hexagonal blogs", posts[0].String(domain.FieldTitle))
	assert.Equal(t, "philly", posts[0].String(domain.FieldAuthorName))
	assert.Equal(t, "0b9f2f0a-7c55-4b8e-a6f1-4c2d1c9f7e21", posts[0].String("author_id"))

	ts, ok := posts[0].Time(domain.FieldPublishedAt)
	require.True(t, ok)
	assert.True(t, ts.Equal(time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)))

	_, hasAuthor := posts[1].Field(domain.FieldAuthorName)
	assert.False(t, hasAuthor)
}

func TestFetchPosts_NoLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"data":[],"meta":{}}`))
	}))
	defer srv.Close()

	posts, err := httpapi.NewPostsFetcher(srv.URL, 0, nil).FetchPosts(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestFetchPosts_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		errSubstr string
	}{
		{name: "server error with api body", status: http.StatusInternalServerError, body: `{"error":"INTERNAL_ERROR","message":"database down"}`, errSubstr: "database down"},
		{name: "not found", status: http.StatusNotFound, body: "nope", errSubstr: "unexpected status 404"},
		{name: "malformed body", status: http.StatusOK, body: `{"data":`, errSubstr: "decode response"},
		{name: "missing data", status: http.StatusOK, body: `{"meta":{}}`, errSubstr: "no data field"},
		{name: "bad uuid", status: http.StatusOK, body: `{"data":[{"id":"not-a-uuid"}]}`, errSubstr: "decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			posts, err := httpapi.NewPostsFetcher(srv.URL, 0, nil).FetchPosts(context.Background())

			assert.Nil(t, posts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestFetchPosts_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := httpapi.NewPostsFetcher(srv.URL, 0, nil).FetchPosts(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPing(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health/live", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer srv.Close()

	fetcher := httpapi.NewPostsFetcher(srv.URL, 0, srv.Client())

	assert.NoError(t, fetcher.Ping(context.Background()))

	healthy = false
	assert.Error(t, fetcher.Ping(context.Background()))
}
