package character

import (
	"testing"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	"github.com/Mnemoth42/RPG/internal/domain/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterEquip(t *testing.T) {
	t.Run("equips into the item's slot", func(t *testing.T) {
		char := NewCharacter("char-1", "Aela")
		sword := &equipment.Weapon{Base: equipment.BasicEquipment{Key: "sword", Name: "Sword"}, Damage: 5}

		previous, ok := char.Equip(sword)
		assert.True(t, ok)
		assert.Nil(t, previous)
		require.NotNil(t, char.EquippedWeapon())
		assert.Equal(t, "sword", char.EquippedWeapon().GetKey())
	})

	t.Run("replacing an item returns the old one", func(t *testing.T) {
		char := NewCharacter("char-1", "Aela")
		sword := &equipment.Weapon{Base: equipment.BasicEquipment{Key: "sword"}, Damage: 5}
		bow := &equipment.Weapon{Base: equipment.BasicEquipment{Key: "bow"}, Damage: 3}

		_, ok := char.Equip(sword)
		require.True(t, ok)

		previous, ok := char.Equip(bow)
		assert.True(t, ok)
		require.NotNil(t, previous)
		assert.Equal(t, "sword", previous.GetKey())
		assert.Equal(t, "bow", char.EquippedWeapon().GetKey())
	})

	t.Run("item without a valid location is a noop", func(t *testing.T) {
		char := NewCharacter("char-1", "Aela")
		junk := &equipment.StatsEquipment{Base: equipment.BasicEquipment{Key: "junk"}}

		_, ok := char.Equip(junk)
		assert.False(t, ok)
		assert.Empty(t, char.EquippedSlots)
	})

	t.Run("unequip clears the slot", func(t *testing.T) {
		char := NewCharacter("char-1", "Aela")
		sword := &equipment.Weapon{Base: equipment.BasicEquipment{Key: "sword"}, Damage: 5}
		_, ok := char.Equip(sword)
		require.True(t, ok)

		removed := char.Unequip(equipment.LocationWeapon)
		require.NotNil(t, removed)
		assert.Equal(t, "sword", removed.GetKey())
		assert.Nil(t, char.EquippedWeapon())
	})
}

func TestCharacterStatAggregation(t *testing.T) {
	char := NewCharacter("char-1", "Aela")
	char.BaseStats[stats.StatDamage] = 10
	char.BaseStats[stats.StatHealth] = 100

	_, ok := char.Equip(&equipment.Weapon{
		Base:            equipment.BasicEquipment{Key: "sword"},
		Damage:          5,
		PercentageBonus: 10,
	})
	require.True(t, ok)

	_, ok = char.Equip(&equipment.StatsEquipment{
		Base: equipment.BasicEquipment{Key: "helmet", Location: equipment.LocationHelmet},
		Additive: []stats.Modifier{
			{Stat: stats.StatDamage, Value: 2},
			{Stat: stats.StatHealth, Value: 20},
		},
		Percentage: []stats.Modifier{
			{Stat: stats.StatHealth, Value: 50},
		},
	})
	require.True(t, ok)

	// (10 + 5 + 2) * 1.10
	assert.InDelta(t, 18.7, char.GetStat(stats.StatDamage), 1e-9)
	// (100 + 20) * 1.5
	assert.InDelta(t, 180, char.GetStat(stats.StatHealth), 1e-9)
	// No contributions: base passes through
	assert.Equal(t, float64(0), char.GetStat(stats.StatMana))
}

func TestCharacterIsAModifierProvider(t *testing.T) {
	char := NewCharacter("char-1", "Aela")
	_, ok := char.Equip(&equipment.Weapon{Base: equipment.BasicEquipment{Key: "sword"}, Damage: 5})
	require.True(t, ok)

	var provider stats.ModifierProvider = char
	assert.Equal(t, []float64{5}, provider.GetAdditiveModifiers(stats.StatDamage))
	assert.Empty(t, provider.GetAdditiveModifiers(stats.StatDefence))
}
