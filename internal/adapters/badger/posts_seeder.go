package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/philly/arch-blog/postpage/internal/platform/seeder"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

// PostsSeeder appends fixture posts to the badger store. Ids already present
// are skipped.
type PostsSeeder struct {
	db     *badger.DB
	source ports.PostFetcher
}

// NewPostsSeeder creates a new badger posts seeder
func NewPostsSeeder(db *badger.DB, source ports.PostFetcher) *PostsSeeder {
	return &PostsSeeder{db: db, source: source}
}

// Name implements seeder.Seeder.
func (s *PostsSeeder) Name() string { return "badger-posts" }

// Seed implements seeder.Seeder.
func (s *PostsSeeder) Seed(ctx context.Context) error {
	posts, err := s.source.FetchPosts(ctx)
	if err != nil {
		return fmt.Errorf("PostsSeeder.Seed: load fixtures: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		for i, post := range posts {
			if err := post.Validate(); err != nil {
				return fmt.Errorf("post %d: %w", i, err)
			}

			idKey := postIDKey(post.ID)
			_, err := txn.Get(idKey)
			if err == nil {
				continue
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("post %d: %w", i, err)
			}

			data, err := json.Marshal(post)
			if err != nil {
				return fmt.Errorf("post %d: marshal: %w", i, err)
			}
			seq, err := nextSeq(txn)
			if err != nil {
				return fmt.Errorf("post %d: sequence: %w", i, err)
			}
			key := postKey(seq)
			if err := txn.Set(key, data); err != nil {
				return fmt.Errorf("post %d: %w", i, err)
			}
			if err := txn.Set(idKey, key); err != nil {
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

var _ seeder.Seeder = (*PostsSeeder)(nil)
