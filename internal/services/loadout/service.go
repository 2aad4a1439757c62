package loadout

//go:generate mockgen -destination=mock/mock.go -package=mockloadout -source=service.go

import (
	"context"

	"github.com/Mnemoth42/RPG/internal/domain/character"
	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	"github.com/Mnemoth42/RPG/internal/domain/stats"
	rpgerr "github.com/Mnemoth42/RPG/internal/errors"
)

// ItemSource resolves item keys to definitions. Satisfied by the items
// repository and by its lookup cache.
type ItemSource interface {
	Get(ctx context.Context, key string) (equipment.Equipment, error)
}

// Service computes effective stats for an equipped loadout
type Service interface {
	// EffectiveStats resolves the loadout's item keys against the catalog
	// and returns every stat's effective value
	EffectiveStats(ctx context.Context, input *EffectiveStatsInput) (*EffectiveStatsOutput, error)
}

// EffectiveStatsInput names the equipped items and the character's base
// values. Items equip in order; a later item whose slot is already taken
// replaces the earlier one, as a slot holds at most one item.
type EffectiveStatsInput struct {
	ItemKeys []string
	Base     map[stats.Stat]float64
}

// EffectiveStatsOutput holds the computed values per stat
type EffectiveStatsOutput struct {
	Stats map[stats.Stat]float64
}

// ServiceConfig holds configuration for the stats service
type ServiceConfig struct {
	Items ItemSource // Required
}

type service struct {
	items ItemSource
}

// NewService creates a new stats service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Items == nil {
		panic("item source is required")
	}

	return &service{
		items: cfg.Items,
	}
}

func (s *service) EffectiveStats(ctx context.Context, input *EffectiveStatsInput) (*EffectiveStatsOutput, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input cannot be nil")
	}

	char := character.NewCharacter("", "")
	for stat, base := range input.Base {
		char.BaseStats[stat] = base
	}

	for _, key := range input.ItemKeys {
		item, err := s.items.Get(ctx, key)
		if err != nil {
			return nil, rpgerr.Wrapf(err, "failed to resolve item '%s'", key).
				WithMeta("item_key", key)
		}
		char.Equip(item)
	}

	result := make(map[stats.Stat]float64, len(stats.All()))
	for _, stat := range stats.All() {
		result[stat] = char.GetStat(stat)
	}

	return &EffectiveStatsOutput{Stats: result}, nil
}
