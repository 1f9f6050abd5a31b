package badger

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

// PostsFetcher lists posts stored under PostKeyPrefix, in key order.
type PostsFetcher struct {
	db    *badger.DB
	limit int
}

// NewPostsFetcher creates a new badger posts fetcher
func NewPostsFetcher(db *badger.DB, limit int) *PostsFetcher {
	return &PostsFetcher{db: db, limit: limit}
}

// FetchPosts implements ports.PostFetcher. Stored values go through the same
// shape validation as any other raw source.
func (f *PostsFetcher) FetchPosts(ctx context.Context) (domain.PostCollection, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')

	err := f.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		count := 0
		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if f.limit > 0 && count >= f.limit {
				break
			}
			if count > 0 {
				buf.WriteByte(',')
			}
			err := it.Item().Value(func(val []byte) error {
				buf.Write(val)
				return nil
			})
			if err != nil {
				return fmt.Errorf("read %s: %w", it.Item().Key(), err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: %w", err)
	}

	buf.WriteByte(']')
	posts, err := domain.DecodeCollection(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: %w", err)
	}
	return posts, nil
}

// Ping implements ports.Pinger.
func (f *PostsFetcher) Ping(context.Context) error {
	if f.db.IsClosed() {
		return fmt.Errorf("PostsFetcher.Ping: badger store is closed")
	}
	return nil
}

var (
	_ ports.PostFetcher = (*PostsFetcher)(nil)
	_ ports.Pinger      = (*PostsFetcher)(nil)
)
