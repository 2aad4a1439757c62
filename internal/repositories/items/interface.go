package items

//go:generate mockgen -destination=mock/mock.go -package=mockitems -source=interface.go

import (
	"context"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
)

// Repository is the item catalog: every authored item definition, keyed by
// its stable identifier. Definitions are design-time data; the catalog is
// written during seeding and read-mostly afterwards.
type Repository interface {
	// Register stores a new item definition. Registering a key that
	// already exists keeps the first registration: the collision is
	// logged as a configuration error, not returned.
	Register(ctx context.Context, item equipment.Equipment) error

	// Get retrieves an item definition by key
	Get(ctx context.Context, key string) (equipment.Equipment, error)

	// List retrieves every registered item definition
	List(ctx context.Context) ([]equipment.Equipment, error)

	// Delete removes an item definition
	Delete(ctx context.Context, key string) error
}
