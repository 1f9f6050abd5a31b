package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/philly/arch-blog/postpage/internal/platform/postgres"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

// PublishedStatus is the only status the page lists.
const PublishedStatus = "published"

// PostsFetcher reads published posts from the blog's PostgreSQL schema.
type PostsFetcher struct {
	postgres.BaseRepository
	pool  *pgxpool.Pool
	limit int
}

// NewPostsFetcher creates a new PostgreSQL posts fetcher
func NewPostsFetcher(db *pgxpool.Pool, limit int) *PostsFetcher {
	return &PostsFetcher{
		BaseRepository: postgres.NewBaseRepository(db),
		pool:           db,
		limit:          limit,
	}
}

// FetchPosts implements ports.PostFetcher. Posts come back newest first.
func (f *PostsFetcher) FetchPosts(ctx context.Context) (domain.PostCollection, error) {
	query, args, err := f.listQuery()
	if err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: build query: %w", err)
	}

	rows, err := f.DB.Query(ctx, query, args...)
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
	return f.pool.Ping(ctx)
}

func (f *PostsFetcher) listQuery() (string, []any, error) {
	qb := f.SB.Select(
		"p.id", "p.title", "p.slug", "p.excerpt", "p.content",
		"u.username AS author_name", "p.published_at",
	).
		From("posts p").
		LeftJoin("users u ON p.author_id = u.id").
		Where(sq.Eq{"p.status": PublishedStatus}).
		OrderBy("p.published_at DESC", "p.id ASC")

	if f.limit > 0 {
		qb = qb.Limit(uint64(f.limit))
	}

	return qb.ToSql()
}

// scanPost scans a single post row into an open domain record
func scanPost(row pgx.Row) (domain.Post, error) {
	var (
		id               pgtype.UUID
		title, slug      string
		excerpt, content pgtype.Text
		authorName       pgtype.Text
		publishedAt      pgtype.Timestamptz
	)

	if err := row.Scan(&id, &title, &slug, &excerpt, &content, &authorName, &publishedAt); err != nil {
		return domain.Post{}, fmt.Errorf("scanPost: %w", err)
	}

	fields := map[string]any{
		domain.FieldTitle: title,
		domain.FieldSlug:  slug,
	}
	if excerpt.Valid {
		fields[domain.FieldExcerpt] = excerpt.String
	}
	if content.Valid {
		fields[domain.FieldContent] = content.String
	}
	if authorName.Valid {
		fields[domain.FieldAuthorName] = authorName.String
	}
	if publishedAt.Valid {
		fields[domain.FieldPublishedAt] = publishedAt.Time
	}

	return domain.NewPost(uuid.UUID(id.Bytes).String(), fields), nil
}

var (
	_ ports.PostFetcher = (*PostsFetcher)(nil)
	_ ports.Pinger      = (*PostsFetcher)(nil)
)
