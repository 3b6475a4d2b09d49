package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"flavorflow/internal/storage"
)

// StorageKey is the fixed blob-store key the full catalog is saved under.
const StorageKey = "flavorflow_items_v2"

var ErrDuplicateID = errors.New("catalog: dish id already exists")

// Service owns the set of published dishes and is the sole writer to the
// blob store. Storage failures degrade the catalog to session-memory-only;
// they are never surfaced as blocking errors.
type Service struct {
	mu     sync.Mutex
	store  storage.Store
	dishes []Dish
}

// NewService loads the persisted catalog. A missing, corrupt, or empty
// stored value falls back to an empty in-memory catalog.
func NewService(ctx context.Context, store storage.Store) *Service {
	s := &Service{store: store}

	raw, err := store.Load(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("catalog: load failed, starting empty: %v", err)
		}
		return s
	}

	var dishes []Dish
	if err := json.Unmarshal(raw, &dishes); err != nil {
		log.Printf("catalog: stored value corrupt, starting empty: %v", err)
		return s
	}

	if len(dishes) > 0 {
		s.dishes = dishes
	}

	return s
}

// List returns the published dishes, newest first. An empty category or
// "All" returns everything.
func (s *Service) List(category string) []Dish {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Dish, 0, len(s.dishes))
	for _, dish := range s.dishes {
		if category != "" && category != "All" && dish.Category != category {
			continue
		}
		out = append(out, dish)
	}
	return out
}

func (s *Service) Get(id string) (Dish, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, dish := range s.dishes {
		if dish.ID == id {
			return dish, true
		}
	}
	return Dish{}, false
}

// Categories returns the distinct categories in insertion order.
func (s *Service) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var out []string
	for _, dish := range s.dishes {
		if !seen[dish.Category] {
			seen[dish.Category] = true
			out = append(out, dish.Category)
		}
	}
	return out
}

// Add prepends the dish and persists the full catalog.
func (s *Service) Add(ctx context.Context, dish Dish) error {
	if dish.ID == "" {
		return errors.New("catalog: dish id is required")
	}
	if dish.Price < 0 {
		return errors.New("catalog: dish price must be >= 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.dishes {
		if existing.ID == dish.ID {
			return ErrDuplicateID
		}
	}

	s.dishes = append([]Dish{dish}, s.dishes...)
	s.persist(ctx)
	return nil
}

// Remove deletes the dish with the given id. Absent ids are a no-op.
func (s *Service) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.dishes[:0]
	removed := false
	for _, dish := range s.dishes {
		if dish.ID == id {
			removed = true
			continue
		}
		kept = append(kept, dish)
	}
	s.dishes = kept

	if removed {
		s.persist(ctx)
	}
}

func (s *Service) persist(ctx context.Context) {
	raw, err := json.Marshal(s.dishes)
	if err != nil {
		log.Printf("catalog: marshal failed, continuing in memory: %v", err)
		return
	}
	if err := s.store.Save(ctx, StorageKey, raw); err != nil {
		// Non-fatal: the catalog keeps serving from memory this session.
		log.Printf("catalog: save failed, continuing in memory: %v", err)
	}
}
