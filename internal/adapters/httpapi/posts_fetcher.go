package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

const (
	postsPath    = "/api/v1/posts"
	livenessPath = "/api/v1/health/live"

	// DefaultTimeout bounds a single API call when no client is supplied.
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 4 << 10
)

// PostsFetcher lists published posts from a remote blog API.
type PostsFetcher struct {
	baseURL string
	limit   int
	client  *http.Client
}

// NewPostsFetcher creates a fetcher against baseURL. A nil client gets a
// default one with DefaultTimeout.
func NewPostsFetcher(baseURL string, limit int, client *http.Client) *PostsFetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &PostsFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		limit:   limit,
		client:  client,
	}
}

// FetchPosts implements ports.PostFetcher. Posts keep the order the API
// returns them in.
func (f *PostsFetcher) FetchPosts(ctx context.Context) (domain.PostCollection, error) {
	reqURL, err := f.listURL()
	if err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: %w", statusError(resp))
	}

	var page PaginatedPosts
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: decode response: %w", err)
	}
	if page.Data == nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: response has no data field")
	}

	posts := make(domain.PostCollection, len(page.Data))
	for i, summary := range page.Data {
		posts[i] = summaryToPost(summary)
	}
	return posts, nil
}

// Ping implements ports.Pinger against the API liveness probe.
func (f *PostsFetcher) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+livenessPath, nil)
	if err != nil {
		return fmt.Errorf("PostsFetcher.Ping: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("PostsFetcher.Ping: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("PostsFetcher.Ping: %w", statusError(resp))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (f *PostsFetcher) listURL() (string, error) {
	u, err := url.Parse(f.baseURL + postsPath)
	if err != nil {
		return "", err
	}

	queryValues := u.Query()
	if err := addQueryParam(queryValues, "status", "published"); err != nil {
		return "", err
	}
	if f.limit > 0 {
		if err := addQueryParam(queryValues, "limit", f.limit); err != nil {
			return "", err
		}
	}
	u.RawQuery = queryValues.Encode()
	return u.String(), nil
}

// addQueryParam styles a form/explode query parameter the way generated
// clients do.
func addQueryParam(values url.Values, name string, value any) error {
	queryFrag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return fmt.Errorf("style %s: %w", name, err)
	}
	parsed, err := url.ParseQuery(queryFrag)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	for k, v := range parsed {
		for _, v2 := range v {
			values.Add(k, v2)
		}
	}
	return nil
}

func summaryToPost(s PostSummary) domain.Post {
	fields := map[string]any{
		domain.FieldTitle:   s.Title,
		domain.FieldSlug:    s.Slug,
		domain.FieldExcerpt: s.Excerpt,
		"status":            s.Status,
		"view_count":        s.ViewCount,
	}
	if uuid.UUID(s.AuthorId) != uuid.Nil {
		fields["author_id"] = uuid.UUID(s.AuthorId).String()
	}
	if s.AuthorName != nil {
		fields[domain.FieldAuthorName] = *s.AuthorName
	}
	if !s.PublishedAt.IsZero() {
		fields[domain.FieldPublishedAt] = s.PublishedAt
	}
	return domain.NewPost(uuid.UUID(s.Id).String(), fields)
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var apiErr ErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, apiErr.Message)
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}

var (
	_ ports.PostFetcher = (*PostsFetcher)(nil)
	_ ports.Pinger      = (*PostsFetcher)(nil)
)
