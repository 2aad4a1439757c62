package catalog

import (
	"context"
	"testing"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	"github.com/Mnemoth42/RPG/internal/domain/stats"
	rpgerr "github.com/Mnemoth42/RPG/internal/errors"
	"github.com/Mnemoth42/RPG/internal/repositories/items"
	"github.com/Mnemoth42/RPG/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
items:
  - key: sword
    type: weapon
    name: Sword
    description: A plain sword.
    icon: icons/sword
    damage: 5
    percentage_bonus: 10
    range: 2
    right_handed: true
    prefab: prefabs/sword
    animator_override: anim/sword
  - key: bow
    type: weapon
    name: Bow
    damage: 3
    projectile: projectiles/arrow
  - key: helmet
    type: stats
    name: Helmet
    location: helmet
    additive:
      - stat: defence
        value: 10
      - stat: defence
        value: 2
    percentage:
      - stat: health
        value: 5
`

func TestParse(t *testing.T) {
	loader := NewLoader(nil)

	parsed, err := loader.Parse([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, parsed, 3)

	sword, ok := parsed[0].(*equipment.Weapon)
	require.True(t, ok)
	assert.Equal(t, "sword", sword.GetKey())
	assert.Equal(t, equipment.LocationWeapon, sword.GetLocation())
	assert.Equal(t, []float64{5}, sword.GetAdditiveModifiers(stats.StatDamage))
	assert.True(t, sword.IsRightHanded())
	assert.False(t, sword.HasProjectile())

	bow, ok := parsed[1].(*equipment.Weapon)
	require.True(t, ok)
	assert.True(t, bow.HasProjectile())
	assert.False(t, bow.HasVisual())

	helmet, ok := parsed[2].(*equipment.StatsEquipment)
	require.True(t, ok)
	assert.Equal(t, equipment.LocationHelmet, helmet.GetLocation())
	assert.Equal(t, []float64{10, 2}, helmet.GetAdditiveModifiers(stats.StatDefence))
	assert.Equal(t, []float64{5}, helmet.GetPercentageModifiers(stats.StatHealth))
}

func TestParseAssignsMissingKeys(t *testing.T) {
	loader := NewLoader(uuid.NewSequentialGenerator("item"))

	parsed, err := loader.Parse([]byte(`
items:
  - type: weapon
    name: Nameless Blade
    damage: 4
`))
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "item-0", parsed[0].GetKey())
}

func TestParseValidation(t *testing.T) {
	loader := NewLoader(nil)

	t.Run("unknown type", func(t *testing.T) {
		_, err := loader.Parse([]byte("items:\n  - key: thing\n    type: potion\n"))
		assert.True(t, rpgerr.IsValidation(err))
	})

	t.Run("unknown location", func(t *testing.T) {
		_, err := loader.Parse([]byte("items:\n  - key: thing\n    type: stats\n    location: tail\n"))
		assert.True(t, rpgerr.IsValidation(err))
	})

	t.Run("unknown stat", func(t *testing.T) {
		_, err := loader.Parse([]byte(`
items:
  - key: ring
    type: stats
    location: necklace
    additive:
      - stat: charisma
        value: 1
`))
		assert.True(t, rpgerr.IsValidation(err))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := loader.Parse([]byte("items: ["))
		assert.Error(t, err)
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := items.NewInMemoryRepository()
	loader := NewLoader(nil)

	require.NoError(t, loader.Seed(ctx, repo, []byte(sampleCatalog)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	item, err := repo.Get(ctx, "helmet")
	require.NoError(t, err)
	assert.Equal(t, "Helmet", item.GetName())
}

func TestSeedDefault(t *testing.T) {
	ctx := context.Background()
	repo := items.NewInMemoryRepository()

	require.NoError(t, SeedDefault(ctx, repo))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	// Every default item must carry a key and a valid location
	for _, item := range all {
		assert.NotEmpty(t, item.GetKey())
		assert.True(t, item.GetLocation().IsValid(), "location for %s", item.GetKey())
	}
}
