package stats

// Stat identifies a character attribute that equipment can modify
type Stat string

const (
	StatHealth              Stat = "health"
	StatMana                Stat = "mana"
	StatManaRegenRate       Stat = "mana-regen-rate"
	StatDamage              Stat = "damage"
	StatDefence             Stat = "defence"
	StatMovementSpeed       Stat = "movement-speed"
	StatExperienceReward    Stat = "experience-reward"
	StatExperienceToLevelUp Stat = "experience-to-level-up"
)

// All returns every known stat, in display order
func All() []Stat {
	return []Stat{
		StatHealth,
		StatMana,
		StatManaRegenRate,
		StatDamage,
		StatDefence,
		StatMovementSpeed,
		StatExperienceReward,
		StatExperienceToLevelUp,
	}
}

// IsValid reports whether s names a known stat
func (s Stat) IsValid() bool {
	for _, known := range All() {
		if s == known {
			return true
		}
	}
	return false
}
