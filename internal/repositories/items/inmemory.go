package items

import (
	"context"
	"log"
	"sync"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	rpgerr "github.com/Mnemoth42/RPG/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the item catalog.
// Useful for testing and for running without Redis.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]equipment.Equipment
	order []string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]equipment.Equipment),
	}
}

// Register stores a new item definition. On a duplicate key the first
// registration wins and the collision is logged, not returned.
func (r *InMemoryRepository) Register(ctx context.Context, item equipment.Equipment) error {
	if item == nil {
		return rpgerr.InvalidArgument("item cannot be nil")
	}

	if item.GetKey() == "" {
		return rpgerr.InvalidArgument("item key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.items[item.GetKey()]; exists {
		log.Printf("duplicate item key %q (%s shadows %s), keeping first registration",
			item.GetKey(), item.GetName(), existing.GetName())
		return nil
	}

	r.items[item.GetKey()] = item
	r.order = append(r.order, item.GetKey())

	return nil
}

// Get retrieves an item definition by key
func (r *InMemoryRepository) Get(ctx context.Context, key string) (equipment.Equipment, error) {
	if key == "" {
		return nil, rpgerr.InvalidArgument("item key is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[key]
	if !exists {
		return nil, rpgerr.NotFoundf("item with key '%s' not found", key).
			WithMeta("item_key", key)
	}

	return item, nil
}

// List retrieves every registered item definition in registration order
func (r *InMemoryRepository) List(ctx context.Context) ([]equipment.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]equipment.Equipment, 0, len(r.order))
	for _, key := range r.order {
		result = append(result, r.items[key])
	}

	return result, nil
}

// Delete removes an item definition
func (r *InMemoryRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return rpgerr.InvalidArgument("item key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; !exists {
		return rpgerr.NotFoundf("item with key '%s' not found", key).
			WithMeta("item_key", key)
	}

	delete(r.items, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
