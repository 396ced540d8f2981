package perftcache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheMissThenHit(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "corechess-perftcache-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cache, err := Open(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer cache.Close()

	const fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	if _, found, err := cache.Get(fen, 4); err != nil {
		t.Fatalf("Get failed: %v", err)
	} else if found {
		t.Error("expected cache miss before any Put")
	}

	if err := cache.Put(fen, 4, 197281); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	nodes, found, err := cache.Get(fen, 4)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("expected cache hit after Put")
	}
	if nodes != 197281 {
		t.Errorf("got %d nodes, want 197281", nodes)
	}

	if _, found, _ := cache.Get(fen, 5); found {
		t.Error("expected miss for a different depth on the same FEN")
	}
}
