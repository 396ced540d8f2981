// Package perftcache memoizes perft(fen, depth) -> node_count results in a
// BadgerDB-backed store, so the CLI harness can re-run the published perft
// suite across invocations without repeating work it has already done.
// This is a harness-level convenience, not a search-time transposition
// table: the core negamax search (internal/engine) never touches it.
package perftcache

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
)

// Cache wraps a BadgerDB instance storing perft(fen, depth) -> nodes.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if necessary) a perft cache rooted at dir.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// DefaultDir returns the perft cache's directory under the user's standard
// data directory, mirroring the teacher's GetDatabaseDir layout.
func DefaultDir() (string, error) {
	var baseDir string
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		baseDir = xdg
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(baseDir, "corechess", "perftcache"), nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// key derives the cache key for a (fen, depth) pair, hashed with xxhash
// since FEN strings are long and the cache only needs key equality, not
// readability.
func key(fen string, depth int) []byte {
	h := xxhash.New()
	_, _ = h.WriteString(fen)
	_, _ = h.WriteString(":")
	_, _ = h.WriteString(strconv.Itoa(depth))
	sum := h.Sum64()

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, sum)
	return buf
}

// Get returns the cached node count for (fen, depth), if present.
func (c *Cache) Get(fen string, depth int) (nodes uint64, found bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(key(fen, depth))
		if getErr == badger.ErrKeyNotFound {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		found = true
		return item.Value(func(val []byte) error {
			nodes = binary.BigEndian.Uint64(val)
			return nil
		})
	})
	return nodes, found, err
}

// Put stores the node count for (fen, depth).
func (c *Cache) Put(fen string, depth int, nodes uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, nodes)

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(fen, depth), buf)
	})
}
