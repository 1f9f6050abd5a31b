package badger

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	// PostKeyPrefix prefixes every stored post; keys sort in insertion order.
	PostKeyPrefix = "post:"
	// PostIDKeyPrefix maps a post id to its post key.
	PostIDKeyPrefix = "postid:"
	// PostSeqKey holds the last assigned post sequence number.
	PostSeqKey = "seq:post"
)

// Open opens a badger store in dir. An empty dir opens an in-memory store.
func Open(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger.Open: %w", err)
	}
	return db, nil
}

func postKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%010d", PostKeyPrefix, seq))
}

func postIDKey(id string) []byte {
	return []byte(PostIDKeyPrefix + id)
}

// nextSeq increments and returns the post sequence inside txn.
func nextSeq(txn *badger.Txn) (uint64, error) {
	var seq uint64
	item, err := txn.Get([]byte(PostSeqKey))
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
	case err != nil:
		return 0, err
	default:
		err = item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("corrupt sequence value (%d bytes)", len(val))
			}
			seq = binary.BigEndian.Uint64(val)
			return nil
		})
		if err != nil {
			return 0, err
		}
	}

	seq++
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	if err := txn.Set([]byte(PostSeqKey), buf); err != nil {
		return 0, err
	}
	return seq, nil
}
