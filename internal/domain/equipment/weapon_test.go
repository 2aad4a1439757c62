package equipment

import (
	"testing"

	"github.com/Mnemoth42/RPG/internal/domain/stats"
	"github.com/stretchr/testify/assert"
)

func TestWeaponModifiers(t *testing.T) {
	sword := &Weapon{
		Base:            BasicEquipment{Key: "sword", Name: "Sword"},
		Damage:          5,
		PercentageBonus: 10,
	}

	t.Run("damage stat yields the scalar fields", func(t *testing.T) {
		assert.Equal(t, []float64{5}, sword.GetAdditiveModifiers(stats.StatDamage))
		assert.Equal(t, []float64{10}, sword.GetPercentageModifiers(stats.StatDamage))
	})

	t.Run("any other stat yields nothing", func(t *testing.T) {
		for _, stat := range stats.All() {
			if stat == stats.StatDamage {
				continue
			}
			assert.Empty(t, sword.GetAdditiveModifiers(stat), "additive for %s", stat)
			assert.Empty(t, sword.GetPercentageModifiers(stat), "percentage for %s", stat)
		}
	})

	t.Run("queries are restartable", func(t *testing.T) {
		first := sword.GetAdditiveModifiers(stats.StatDamage)
		second := sword.GetAdditiveModifiers(stats.StatDamage)
		assert.Equal(t, first, second)
	})
}

func TestWeaponLocation(t *testing.T) {
	// Weapons always occupy the weapon slot, even if the authored base
	// location is missing or wrong
	w := &Weapon{Base: BasicEquipment{Key: "bow", Location: LocationHelmet}}
	assert.Equal(t, LocationWeapon, w.GetLocation())
}

func TestWeaponCapabilityFlags(t *testing.T) {
	t.Run("bare-handed weapon has no visual and no projectile", func(t *testing.T) {
		unarmed := &Weapon{Base: BasicEquipment{Key: "unarmed"}, Damage: 1}
		assert.False(t, unarmed.HasVisual())
		assert.False(t, unarmed.HasProjectile())
		assert.False(t, unarmed.HasAnimatorOverride())
	})

	t.Run("bow is ranged with a visual and an override", func(t *testing.T) {
		bow := &Weapon{
			Base:             BasicEquipment{Key: "bow"},
			Prefab:           "prefabs/bow",
			AnimatorOverride: "anim/bow",
			Projectile:       "projectiles/arrow",
			RightHanded:      false,
		}
		assert.True(t, bow.HasVisual())
		assert.True(t, bow.HasProjectile())
		assert.True(t, bow.HasAnimatorOverride())
		assert.False(t, bow.IsRightHanded())
	})
}
