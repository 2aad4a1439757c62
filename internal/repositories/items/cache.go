package items

import (
	"context"
	"log"
	"sync"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	rpgerr "github.com/Mnemoth42/RPG/internal/errors"
)

// Cache is a read-through lookup cache over a Repository. The catalog is
// loaded in full on first access and served from memory afterwards, which
// is acceptable because item definitions are static for the life of the
// process. Callers that mutate the backing repository after first access
// must call Invalidate to force a rebuild.
type Cache struct {
	mu      sync.RWMutex
	backing Repository
	byKey   map[string]equipment.Equipment
	loaded  bool
}

// NewCache creates a cache over the given repository
func NewCache(backing Repository) *Cache {
	if backing == nil {
		panic("backing repository is required")
	}

	return &Cache{
		backing: backing,
	}
}

// Get retrieves an item definition by key, building the cache on first use
func (c *Cache) Get(ctx context.Context, key string) (equipment.Equipment, error) {
	if key == "" {
		return nil, rpgerr.InvalidArgument("item key is required")
	}

	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.byKey[key]
	if !exists {
		return nil, rpgerr.NotFoundf("item with key '%s' not found", key).
			WithMeta("item_key", key)
	}

	return item, nil
}

// Invalidate drops the cached catalog so the next access rebuilds it from
// the backing repository
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byKey = nil
	c.loaded = false
}

func (c *Cache) ensureLoaded(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()

	if loaded {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have built it while we waited
	if c.loaded {
		return nil
	}

	all, err := c.backing.List(ctx)
	if err != nil {
		return rpgerr.Wrap(err, "failed to build item lookup cache")
	}

	byKey := make(map[string]equipment.Equipment, len(all))
	for _, item := range all {
		if existing, exists := byKey[item.GetKey()]; exists {
			log.Printf("duplicate item key %q while building lookup cache (%s shadows %s), keeping first",
				item.GetKey(), item.GetName(), existing.GetName())
			continue
		}
		byKey[item.GetKey()] = item
	}

	c.byKey = byKey
	c.loaded = true

	return nil
}
