package character

import (
	"sync"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	"github.com/Mnemoth42/RPG/internal/domain/stats"
)

// Character holds a character's equipped loadout and base stats. Which
// items get equipped is decided by the inventory layer; this type owns the
// slot bookkeeping and exposes the aggregated modifier view over every
// equipped item.
type Character struct {
	ID   string
	Name string

	Level      int
	Experience int

	// BaseStats are the character's values before any equipment bonus
	BaseStats map[stats.Stat]float64

	EquippedSlots map[equipment.Location]equipment.Equipment

	mu sync.Mutex
}

// NewCharacter creates a character with empty slots
func NewCharacter(id, name string) *Character {
	return &Character{
		ID:            id,
		Name:          name,
		Level:         1,
		BaseStats:     make(map[stats.Stat]float64),
		EquippedSlots: make(map[equipment.Location]equipment.Equipment),
	}
}

// Equip places the item in the slot its location names, returning whatever
// previously occupied that slot (nil if the slot was empty). An item with
// no valid location is a noop.
func (c *Character) Equip(item equipment.Equipment) (equipment.Equipment, bool) {
	if item == nil || !item.GetLocation().IsValid() {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.EquippedSlots == nil {
		c.EquippedSlots = make(map[equipment.Location]equipment.Equipment)
	}

	previous := c.EquippedSlots[item.GetLocation()]
	c.EquippedSlots[item.GetLocation()] = item

	return previous, true
}

// Unequip clears the given slot, returning the removed item if any
func (c *Character) Unequip(location equipment.Location) equipment.Equipment {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.EquippedSlots[location]
	delete(c.EquippedSlots, location)

	return removed
}

// EquippedWeapon returns the weapon in the weapon slot, nil when unarmed
// or when the slot holds something else
func (c *Character) EquippedWeapon() *equipment.Weapon {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, _ := c.EquippedSlots[equipment.LocationWeapon].(*equipment.Weapon)
	return w
}

// GetAdditiveModifiers aggregates additive contributions across every
// equipped item, so a Character is itself a ModifierProvider
func (c *Character) GetAdditiveModifiers(stat stats.Stat) []float64 {
	var values []float64
	for _, p := range c.providers() {
		values = append(values, p.GetAdditiveModifiers(stat)...)
	}
	return values
}

// GetPercentageModifiers aggregates percentage contributions across every
// equipped item
func (c *Character) GetPercentageModifiers(stat stats.Stat) []float64 {
	var values []float64
	for _, p := range c.providers() {
		values = append(values, p.GetPercentageModifiers(stat)...)
	}
	return values
}

// GetStat computes the character's effective value for stat from its base
// value and every equipped item's contributions
func (c *Character) GetStat(stat stats.Stat) float64 {
	return stats.Effective(c.BaseStats[stat], c.providers(), stat)
}

// providers returns the modifier view of every equipped item. Items that
// do not provide modifiers are skipped.
func (c *Character) providers() []stats.ModifierProvider {
	c.mu.Lock()
	defer c.mu.Unlock()

	providers := make([]stats.ModifierProvider, 0, len(c.EquippedSlots))
	for _, location := range equipment.AllLocations() {
		item := c.EquippedSlots[location]
		if item == nil {
			continue
		}
		if p, ok := item.(stats.ModifierProvider); ok {
			providers = append(providers, p)
		}
	}

	return providers
}
