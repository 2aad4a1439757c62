package catalog

import (
	"context"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	"github.com/Mnemoth42/RPG/internal/domain/stats"
	"github.com/Mnemoth42/RPG/internal/repositories/items"
)

// Default returns the built-in starter catalog, used when no catalog file
// is configured
func Default() []equipment.Equipment {
	return []equipment.Equipment{
		&equipment.Weapon{
			Base: equipment.BasicEquipment{
				Key:         "unarmed",
				Name:        "Unarmed",
				Description: "Bare fists. No visual, no special animations.",
			},
			Damage: 1,
		},
		&equipment.Weapon{
			Base: equipment.BasicEquipment{
				Key:         "sword",
				Name:        "Sword",
				Description: "A plain one-handed sword.",
				Icon:        "icons/sword",
			},
			Damage:           5,
			PercentageBonus:  10,
			Range:            2,
			RightHanded:      true,
			Prefab:           "prefabs/sword",
			AnimatorOverride: "anim/sword",
		},
		&equipment.Weapon{
			Base: equipment.BasicEquipment{
				Key:         "bow",
				Name:        "Bow",
				Description: "A short bow. Fires arrows.",
				Icon:        "icons/bow",
			},
			Damage:           3,
			Range:            12,
			RightHanded:      false,
			Prefab:           "prefabs/bow",
			AnimatorOverride: "anim/bow",
			Projectile:       "projectiles/arrow",
		},
		&equipment.StatsEquipment{
			Base: equipment.BasicEquipment{
				Key:         "iron-helmet",
				Name:        "Iron Helmet",
				Description: "Dented but serviceable.",
				Icon:        "icons/iron-helmet",
				Location:    equipment.LocationHelmet,
			},
			Additive: []stats.Modifier{
				{Stat: stats.StatDefence, Value: 10},
			},
			Percentage: []stats.Modifier{
				{Stat: stats.StatHealth, Value: 5},
			},
		},
		&equipment.StatsEquipment{
			Base: equipment.BasicEquipment{
				Key:         "lucky-necklace",
				Name:        "Lucky Necklace",
				Description: "Feels warm to the touch.",
				Icon:        "icons/lucky-necklace",
				Location:    equipment.LocationNecklace,
			},
			Percentage: []stats.Modifier{
				{Stat: stats.StatExperienceReward, Value: 20},
			},
		},
	}
}

// SeedDefault registers the built-in catalog into the repository
func SeedDefault(ctx context.Context, repo items.Repository) error {
	for _, item := range Default() {
		if err := repo.Register(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
