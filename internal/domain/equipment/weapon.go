package equipment

import (
	"github.com/Mnemoth42/RPG/internal/domain/stats"
)

// Weapon is an item definition that always modifies exactly one stat,
// Damage, so the bonus is stored as two scalar fields instead of modifier
// lists. Visual prefab, animator override, and projectile are references
// resolved by the engine-side collaborators; any of them may be empty.
type Weapon struct {
	Base BasicEquipment `json:"base" yaml:"base"`

	Damage          float64 `json:"damage" yaml:"damage"`
	PercentageBonus float64 `json:"percentage_bonus" yaml:"percentage_bonus"`
	Range           float64 `json:"range" yaml:"range"`
	RightHanded     bool    `json:"right_handed" yaml:"right_handed"`

	Prefab           string `json:"prefab" yaml:"prefab"`
	AnimatorOverride string `json:"animator_override" yaml:"animator_override"`
	Projectile       string `json:"projectile" yaml:"projectile"`
}

// GetAdditiveModifiers yields the weapon's flat damage for the Damage stat
// and nothing for any other stat
func (w *Weapon) GetAdditiveModifiers(stat stats.Stat) []float64 {
	if stat == stats.StatDamage {
		return []float64{w.Damage}
	}
	return nil
}

// GetPercentageModifiers yields the weapon's percentage bonus for the
// Damage stat and nothing for any other stat
func (w *Weapon) GetPercentageModifiers(stat stats.Stat) []float64 {
	if stat == stats.StatDamage {
		return []float64{w.PercentageBonus}
	}
	return nil
}

// HasProjectile reports whether this weapon fires projectiles. The attack
// state machine uses it to branch between melee and ranged handling.
func (w *Weapon) HasProjectile() bool {
	return w.Projectile != ""
}

// HasVisual reports whether there is a prefab to spawn in a hand socket.
// A bare-handed or pure stat weapon has none and still equips normally.
func (w *Weapon) HasVisual() bool {
	return w.Prefab != ""
}

// HasAnimatorOverride reports whether equipping this weapon replaces the
// character's default animations
func (w *Weapon) HasAnimatorOverride() bool {
	return w.AnimatorOverride != ""
}

func (w *Weapon) IsRightHanded() bool {
	return w.RightHanded
}

func (w *Weapon) GetEquipmentType() EquipmentType {
	return EquipmentTypeWeapon
}

func (w *Weapon) GetKey() string {
	return w.Base.Key
}

func (w *Weapon) GetName() string {
	return w.Base.Name
}

func (w *Weapon) GetDescription() string {
	return w.Base.Description
}

func (w *Weapon) GetIcon() string {
	return w.Base.Icon
}

// GetLocation always reports the weapon slot regardless of what the
// authored base says
func (w *Weapon) GetLocation() Location {
	return LocationWeapon
}

func (w *Weapon) IsStackable() bool {
	return w.Base.Stackable
}
