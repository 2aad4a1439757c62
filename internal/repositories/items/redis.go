package items

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	rpgerr "github.com/Mnemoth42/RPG/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	itemKeyPrefix = "item:"
	itemIndexKey  = "items:index"
)

// ItemData wraps an item definition with type information for JSON
// marshaling, so the concrete variant survives the round trip
type ItemData struct {
	Type string          `json:"type"`
	Item json.RawMessage `json:"item"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed item catalog
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

// itemToData converts an Equipment value to its storage envelope
func itemToData(item equipment.Equipment) (*ItemData, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}

	var typeStr string
	switch item.(type) {
	case *equipment.Weapon:
		typeStr = "weapon"
	case *equipment.StatsEquipment:
		typeStr = "stats"
	default:
		return nil, rpgerr.InvalidArgumentf("unknown item type %T", item)
	}

	return &ItemData{Type: typeStr, Item: raw}, nil
}

// dataToItem converts a storage envelope back to the concrete variant
func dataToItem(data *ItemData) (equipment.Equipment, error) {
	switch data.Type {
	case "weapon":
		var w equipment.Weapon
		if err := json.Unmarshal(data.Item, &w); err != nil {
			return nil, fmt.Errorf("failed to unmarshal weapon: %w", err)
		}
		return &w, nil
	case "stats":
		var s equipment.StatsEquipment
		if err := json.Unmarshal(data.Item, &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stats item: %w", err)
		}
		return &s, nil
	default:
		return nil, rpgerr.Validationf("unknown item type '%s' in storage", data.Type)
	}
}

// Register stores a new item definition. On a duplicate key the first
// registration wins and the collision is logged, not returned.
func (r *redisRepository) Register(ctx context.Context, item equipment.Equipment) error {
	if item == nil {
		return rpgerr.InvalidArgument("item cannot be nil")
	}

	if item.GetKey() == "" {
		return rpgerr.InvalidArgument("item key is required")
	}

	exists, err := r.client.Exists(ctx, itemKeyPrefix+item.GetKey()).Result()
	if err != nil {
		return rpgerr.Wrapf(err, "failed to check for item '%s'", item.GetKey())
	}
	if exists > 0 {
		log.Printf("duplicate item key %q, keeping first registration", item.GetKey())
		return nil
	}

	data, err := itemToData(item)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal item envelope: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, itemKeyPrefix+item.GetKey(), string(payload), 0)
	pipe.SAdd(ctx, itemIndexKey, item.GetKey())
	if _, err := pipe.Exec(ctx); err != nil {
		return rpgerr.Wrapf(err, "failed to store item '%s'", item.GetKey())
	}

	return nil
}

// Get retrieves an item definition by key
func (r *redisRepository) Get(ctx context.Context, key string) (equipment.Equipment, error) {
	if key == "" {
		return nil, rpgerr.InvalidArgument("item key is required")
	}

	payload, err := r.client.Get(ctx, itemKeyPrefix+key).Result()
	if err == redis.Nil {
		return nil, rpgerr.NotFoundf("item with key '%s' not found", key).
			WithMeta("item_key", key)
	}
	if err != nil {
		return nil, rpgerr.Wrapf(err, "failed to get item '%s'", key)
	}

	var data ItemData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item envelope: %w", err)
	}

	return dataToItem(&data)
}

// List retrieves every registered item definition. Reads fan out
// concurrently; ordering follows the index set and is not stable.
func (r *redisRepository) List(ctx context.Context) ([]equipment.Equipment, error) {
	keys, err := r.client.SMembers(ctx, itemIndexKey).Result()
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to read item index")
	}

	result := make([]equipment.Equipment, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			item, err := r.Get(ctx, key)
			if err != nil {
				return rpgerr.Wrapf(err, "failed to get item '%s'", key)
			}
			result[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// Delete removes an item definition
func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return rpgerr.InvalidArgument("item key is required")
	}

	exists, err := r.client.Exists(ctx, itemKeyPrefix+key).Result()
	if err != nil {
		return rpgerr.Wrapf(err, "failed to check for item '%s'", key)
	}
	if exists == 0 {
		return rpgerr.NotFoundf("item with key '%s' not found", key).
			WithMeta("item_key", key)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, itemKeyPrefix+key)
	pipe.SRem(ctx, itemIndexKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return rpgerr.Wrapf(err, "failed to delete item '%s'", key)
	}

	return nil
}
