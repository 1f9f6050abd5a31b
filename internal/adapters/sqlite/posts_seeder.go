package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/philly/arch-blog/postpage/internal/platform/seeder"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

// columnFields are stored in their own columns; every other field goes to extra.
var columnFields = map[string]bool{
	domain.FieldTitle:       true,
	domain.FieldSlug:        true,
	domain.FieldExcerpt:     true,
	domain.FieldContent:     true,
	domain.FieldAuthorName:  true,
	domain.FieldPublishedAt: true,
	"status":                true,
}

// PostsSeeder copies fixture posts into the SQLite store. Existing ids are
// left untouched.
type PostsSeeder struct {
	db     *sql.DB
	sb     sq.StatementBuilderType
	source ports.PostFetcher
}

// NewPostsSeeder creates a new SQLite posts seeder
func NewPostsSeeder(db *sql.DB, source ports.PostFetcher) *PostsSeeder {
	return &PostsSeeder{
		db:     db,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		source: source,
	}
}

// Name implements seeder.Seeder.
func (s *PostsSeeder) Name() string { return "sqlite-posts" }

// Seed implements seeder.Seeder.
func (s *PostsSeeder) Seed(ctx context.Context) error {
	posts, err := s.source.FetchPosts(ctx)
	if err != nil {
		return fmt.Errorf("PostsSeeder.Seed: load fixtures: %w", err)
	}
	if err := posts.Validate(); err != nil {
		return fmt.Errorf("PostsSeeder.Seed: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("PostsSeeder.Seed: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, post := range posts {
		query, args, err := s.insertQuery(post)
		if err != nil {
			return fmt.Errorf("PostsSeeder.Seed: post %d: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("PostsSeeder.Seed: post %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("PostsSeeder.Seed: commit: %w", err)
	}
	return nil
}

func (s *PostsSeeder) insertQuery(post domain.Post) (string, []any, error) {
	extra := map[string]any{}
	for k, v := range post.Fields {
		if !columnFields[k] {
			extra[k] = v
		}
	}
	extraJSON, err := json.Marshal(extra)
	if err != nil {
		return "", nil, fmt.Errorf("marshal extra fields: %w", err)
	}

	var publishedAt any
	if ts, ok := post.Time(domain.FieldPublishedAt); ok {
		publishedAt = ts.UTC().Format(time.RFC3339)
	}

	status := post.String("status")
	if status == "" {
		status = PublishedStatus
	}

	return s.sb.
		Insert("posts").
		Options("OR IGNORE").
		Columns("id", "title", "slug", "excerpt", "content", "author_name", "status", "published_at", "extra").
		Values(
			post.ID,
			post.String(domain.FieldTitle),
			post.String(domain.FieldSlug),
			post.String(domain.FieldExcerpt),
			post.String(domain.FieldContent),
			post.String(domain.FieldAuthorName),
			status,
			publishedAt,
			string(extraJSON),
		).
		ToSql()
}

var _ seeder.Seeder = (*PostsSeeder)(nil)
