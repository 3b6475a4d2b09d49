package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"flavorflow/internal/storage"
)

// --------------------------------------------------
// Failing store (exercises the degraded memory-only path)
// --------------------------------------------------

type failingStore struct{}

func (f *failingStore) Load(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("store unavailable")
}

func (f *failingStore) Save(ctx context.Context, key string, value []byte) error {
	return errors.New("store unavailable")
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestAddPrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	service := NewService(ctx, storage.NewMemoryStore())

	_ = service.Add(ctx, Dish{ID: "d1", Title: "Dosa", Category: "Main Course"})
	_ = service.Add(ctx, Dish{ID: "d2", Title: "Idli", Category: "Sides"})

	items := service.List("")
	if len(items) != 2 {
		t.Fatalf("expected 2 dishes, got %d", len(items))
	}
	if items[0].ID != "d2" {
		t.Fatalf("expected newest dish first, got %s", items[0].ID)
	}
}

func TestAddRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	service := NewService(ctx, storage.NewMemoryStore())

	_ = service.Add(ctx, Dish{ID: "d1", Title: "Dosa"})
	err := service.Add(ctx, Dish{ID: "d1", Title: "Dosa Again"})

	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if len(service.List("")) != 1 {
		t.Fatal("duplicate add must not grow the catalog")
	}
}

func TestAddRejectsNegativePrice(t *testing.T) {
	ctx := context.Background()
	service := NewService(ctx, storage.NewMemoryStore())

	if err := service.Add(ctx, Dish{ID: "d1", Price: -5}); err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestRemoveDeletesAndToleratesAbsentID(t *testing.T) {
	ctx := context.Background()
	service := NewService(ctx, storage.NewMemoryStore())

	_ = service.Add(ctx, Dish{ID: "d1"})
	service.Remove(ctx, "d1")

	for _, dish := range service.List("") {
		if dish.ID == "d1" {
			t.Fatal("removed dish still listed")
		}
	}

	// Absent id is a no-op, not an error.
	service.Remove(ctx, "missing")
}

func TestAddPersistsFullCatalog(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	service := NewService(ctx, store)

	_ = service.Add(ctx, Dish{ID: "d1", Title: "Dosa"})

	raw, err := store.Load(ctx, StorageKey)
	if err != nil {
		t.Fatalf("expected persisted catalog: %v", err)
	}

	var dishes []Dish
	if err := json.Unmarshal(raw, &dishes); err != nil {
		t.Fatalf("persisted catalog not valid JSON: %v", err)
	}
	if len(dishes) != 1 || dishes[0].ID != "d1" {
		t.Fatalf("unexpected persisted catalog: %+v", dishes)
	}
}

func TestLoadRestoresPersistedCatalog(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := NewService(ctx, store)
	_ = first.Add(ctx, Dish{ID: "d1", Title: "Dosa"})

	second := NewService(ctx, store)
	if len(second.List("")) != 1 {
		t.Fatal("expected catalog restored from store")
	}
}

func TestLoadCorruptValueStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	_ = store.Save(ctx, StorageKey, []byte("{not json"))

	service := NewService(ctx, store)
	if len(service.List("")) != 0 {
		t.Fatal("corrupt store must fall back to empty catalog")
	}
}

func TestLoadEmptyCollectionStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	_ = store.Save(ctx, StorageKey, []byte("[]"))

	service := NewService(ctx, store)
	if len(service.List("")) != 0 {
		t.Fatal("empty stored collection must fall back to empty catalog")
	}
}

func TestStoreFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	service := NewService(ctx, &failingStore{})

	if err := service.Add(ctx, Dish{ID: "d1", Title: "Dosa"}); err != nil {
		t.Fatalf("store failure must not block add: %v", err)
	}
	if len(service.List("")) != 1 {
		t.Fatal("catalog must keep serving from memory")
	}
}

func TestListFiltersByCategory(t *testing.T) {
	ctx := context.Background()
	service := NewService(ctx, storage.NewMemoryStore())

	_ = service.Add(ctx, Dish{ID: "d1", Category: "Main Course"})
	_ = service.Add(ctx, Dish{ID: "d2", Category: "Beverage"})
	_ = service.Add(ctx, Dish{ID: "d3", Category: "Main Course"})

	mains := service.List("Main Course")
	if len(mains) != 2 {
		t.Fatalf("expected 2 mains, got %d", len(mains))
	}

	if len(service.List("All")) != 3 {
		t.Fatal("expected All to return everything")
	}

	cats := service.Categories()
	if len(cats) != 2 {
		t.Fatalf("expected 2 distinct categories, got %v", cats)
	}
}
