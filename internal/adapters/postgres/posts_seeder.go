package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/philly/arch-blog/postpage/internal/adapters/html"
	"github.com/philly/arch-blog/postpage/internal/platform/postgres"
	"github.com/philly/arch-blog/postpage/internal/platform/seeder"
	"github.com/philly/arch-blog/postpage/internal/platform/validator"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

// postIDNamespace maps non-UUID fixture ids onto stable UUIDs.
var postIDNamespace = uuid.MustParse("8f0c7d4e-2b8a-4f0e-9c51-6a1d3e7b9f20")

// PostsSeeder copies fixture posts into the posts table in one transaction.
// Rows whose id already exists are left untouched.
type PostsSeeder struct {
	base     postgres.BaseRepository
	txm      postgres.TransactionManager
	source   ports.PostFetcher
	authorID uuid.UUID
}

// NewPostsSeeder creates a seeder. authorID is used for fixtures that carry
// no author_id of their own.
func NewPostsSeeder(db *pgxpool.Pool, source ports.PostFetcher, authorID uuid.UUID) *PostsSeeder {
	base := postgres.NewBaseRepository(db)
	return &PostsSeeder{
		base:     base,
		txm:      postgres.NewTransactionManager(db, base),
		source:   source,
		authorID: authorID,
	}
}

// Name implements seeder.Seeder.
func (s *PostsSeeder) Name() string { return "postgres-posts" }

// Seed implements seeder.Seeder.
func (s *PostsSeeder) Seed(ctx context.Context) error {
	posts, err := s.source.FetchPosts(ctx)
	if err != nil {
		return fmt.Errorf("PostsSeeder.Seed: load fixtures: %w", err)
	}
	if err := posts.Validate(); err != nil {
		return fmt.Errorf("PostsSeeder.Seed: %w", err)
	}

	err = s.txm.InTx(ctx, func(repo postgres.BaseRepository) error {
		for i, post := range posts {
			query, args, err := s.insertQuery(repo, post)
			if err != nil {
				return fmt.Errorf("post %d: %w", i, err)
			}
			if _, err := repo.DB.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("post %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("PostsSeeder.Seed: %w", err)
	}
	return nil
}

func (s *PostsSeeder) insertQuery(repo postgres.BaseRepository, post domain.Post) (string, []any, error) {
	authorID := s.authorID
	if raw := post.String("author_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return "", nil, fmt.Errorf("invalid author_id %q: %w", raw, err)
		}
		authorID = parsed
	}
	if authorID == uuid.Nil {
		return "", nil, fmt.Errorf("post %q has no author", post.ID)
	}

	status := post.String("status")
	if status == "" {
		status = PublishedStatus
	}

	title := post.String(domain.FieldTitle)
	publishedAt, ok := post.Time(domain.FieldPublishedAt)
	if !ok {
		publishedAt = time.Now().UTC()
	}

	return repo.SB.
		Insert("posts").
		Columns(
			"id", "title", "content", "excerpt", "slug", "status",
			"author_id", "published_at", "created_at", "updated_at",
		).
		Values(
			pgtype.UUID{Bytes: PostUUID(post.ID), Valid: true},
			title,
			post.String(domain.FieldContent),
			post.String(domain.FieldExcerpt),
			validator.PermalinkSlug(post.String(domain.FieldSlug), title, html.MaxSlugLength),
			status,
			pgtype.UUID{Bytes: authorID, Valid: true},
			pgtype.Timestamptz{Time: publishedAt, Valid: true},
			pgtype.Timestamptz{Time: publishedAt, Valid: true},
			pgtype.Timestamptz{Time: publishedAt, Valid: true},
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
}

// PostUUID returns id itself when it is a UUID, otherwise a name-based UUID
// derived from it, so reseeding the same fixtures hits the same rows.
func PostUUID(id string) uuid.UUID {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed
	}
	return uuid.NewSHA1(postIDNamespace, []byte(id))
}

var _ seeder.Seeder = (*PostsSeeder)(nil)
