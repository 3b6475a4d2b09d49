package storage

import (
	"context"
	"errors"
	"testing"
)

func TestFileStoreRoundtrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	if _, err := store.Load(ctx, "menu"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	value := []byte(`[{"id":"d1"}]`)
	if err := store.Save(ctx, "menu", value); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load(ctx, "menu")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if string(loaded) != string(value) {
		t.Fatalf("expected %s, got %s", value, loaded)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	_ = store.Save(ctx, "menu", []byte(`["old"]`))
	_ = store.Save(ctx, "menu", []byte(`["new"]`))

	loaded, err := store.Load(ctx, "menu")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if string(loaded) != `["new"]` {
		t.Fatalf("expected overwritten value, got %s", loaded)
	}
}

func TestMemoryStoreRoundtrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Load(ctx, "menu"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Save(ctx, "menu", []byte("abc")); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, _ := store.Load(ctx, "menu")
	if string(loaded) != "abc" {
		t.Fatalf("expected abc, got %s", loaded)
	}

	// Mutating the returned slice must not corrupt the stored copy.
	loaded[0] = 'x'
	again, _ := store.Load(ctx, "menu")
	if string(again) != "abc" {
		t.Fatalf("stored value mutated: %s", again)
	}
}
