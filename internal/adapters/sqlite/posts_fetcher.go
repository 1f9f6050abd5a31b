package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

// PublishedStatus is the only status the page lists.
const PublishedStatus = "published"

// PostsFetcher reads published posts from a local SQLite store.
type PostsFetcher struct {
	db    *sql.DB
	sb    sq.StatementBuilderType
	limit int
}

// NewPostsFetcher creates a new SQLite posts fetcher
func NewPostsFetcher(db *sql.DB, limit int) *PostsFetcher {
	return &PostsFetcher{
		db:    db,
		sb:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		limit: limit,
	}
}

// FetchPosts implements ports.PostFetcher. Posts come back newest first, then
// in insertion order.
func (f *PostsFetcher) FetchPosts(ctx context.Context) (domain.PostCollection, error) {
	qb := f.sb.
		Select("id", "title", "slug", "excerpt", "content", "author_name", "published_at", "extra").
		From("posts").
		Where(sq.Eq{"status": PublishedStatus}).
		OrderBy("published_at DESC", "rowid ASC")
	if f.limit > 0 {
		qb = qb.Limit(uint64(f.limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: build query: %w", err)
	}

	rows, err := f.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: %w", err)
	}
	defer rows.Close()

	posts := domain.PostCollection{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: rows error: %w", err)
	}
	return posts, nil
}

// Ping implements ports.Pinger.
func (f *PostsFetcher) Ping(ctx context.Context) error {
	return f.db.PingContext(ctx)
}

func scanPost(rows *sql.Rows) (domain.Post, error) {
	var (
		id, title, slug, excerpt, content, authorName, extra string
		publishedAt                                          sql.NullString
	)
	if err := rows.Scan(&id, &title, &slug, &excerpt, &content, &authorName, &publishedAt, &extra); err != nil {
		return domain.Post{}, fmt.Errorf("scanPost: %w", err)
	}

	fields := map[string]any{}
	if extra != "" {
		dec := json.NewDecoder(bytes.NewReader([]byte(extra)))
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil {
			return domain.Post{}, fmt.Errorf("scanPost: post %q: extra: %w", id, err)
		}
	}

	fields[domain.FieldTitle] = title
	setIfNotEmpty(fields, domain.FieldSlug, slug)
	setIfNotEmpty(fields, domain.FieldExcerpt, excerpt)
	setIfNotEmpty(fields, domain.FieldContent, content)
	setIfNotEmpty(fields, domain.FieldAuthorName, authorName)
	if publishedAt.Valid {
		fields[domain.FieldPublishedAt] = publishedAt.String
	}

	return domain.NewPost(id, fields), nil
}

func setIfNotEmpty(fields map[string]any, key, value string) {
	if value != "" {
		fields[key] = value
	}
}

var (
	_ ports.PostFetcher = (*PostsFetcher)(nil)
	_ ports.Pinger      = (*PostsFetcher)(nil)
)
