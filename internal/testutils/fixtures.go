package testutils

import (
	"github.com/Mnemoth42/RPG/internal/domain/character"
	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	"github.com/Mnemoth42/RPG/internal/domain/stats"
)

// CreateTestWeapon creates a weapon definition with sensible defaults
func CreateTestWeapon(key, name string, damage float64) *equipment.Weapon {
	return &equipment.Weapon{
		Base: equipment.BasicEquipment{
			Key:         key,
			Name:        name,
			Description: "test weapon",
			Icon:        "icons/" + key,
		},
		Damage:           damage,
		PercentageBonus:  10,
		Range:            2,
		RightHanded:      true,
		Prefab:           "prefabs/" + key,
		AnimatorOverride: "anim/" + key,
	}
}

// CreateTestStatsItem creates a list-modifier item definition
func CreateTestStatsItem(key, name string, location equipment.Location, additive ...stats.Modifier) *equipment.StatsEquipment {
	return &equipment.StatsEquipment{
		Base: equipment.BasicEquipment{
			Key:      key,
			Name:     name,
			Icon:     "icons/" + key,
			Location: location,
		},
		Additive: additive,
	}
}

// CreateTestCharacter creates a character with base combat stats
func CreateTestCharacter(id, name string) *character.Character {
	char := character.NewCharacter(id, name)
	char.BaseStats[stats.StatHealth] = 100
	char.BaseStats[stats.StatDamage] = 10
	char.BaseStats[stats.StatDefence] = 5
	return char
}
