package equipment

// Location is the slot an item occupies when equipped. The set is closed:
// equip logic dispatches on these values rather than on runtime types.
type Location string

const (
	LocationWeapon   Location = "weapon"
	LocationHelmet   Location = "helmet"
	LocationNecklace Location = "necklace"
	LocationBody     Location = "body"
	LocationTrousers Location = "trousers"
	LocationBoots    Location = "boots"
	LocationShield   Location = "shield"
	LocationGloves   Location = "gloves"
	LocationNone     Location = "none"
)

// AllLocations returns every equippable location
func AllLocations() []Location {
	return []Location{
		LocationWeapon,
		LocationHelmet,
		LocationNecklace,
		LocationBody,
		LocationTrousers,
		LocationBoots,
		LocationShield,
		LocationGloves,
	}
}

// IsValid reports whether l names a known equip location
func (l Location) IsValid() bool {
	for _, known := range AllLocations() {
		if l == known {
			return true
		}
	}
	return false
}
