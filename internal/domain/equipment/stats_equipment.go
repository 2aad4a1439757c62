package equipment

import (
	"github.com/Mnemoth42/RPG/internal/domain/stats"
)

// StatsEquipment is an item definition carrying arbitrary modifier lists,
// used for armor and accessories that may touch any subset of stats. The
// same stat may appear more than once; every matching entry contributes.
// List order is preserved for authoring but never affects aggregation.
type StatsEquipment struct {
	Base BasicEquipment `json:"base" yaml:"base"`

	Additive   []stats.Modifier `json:"additive" yaml:"additive"`
	Percentage []stats.Modifier `json:"percentage" yaml:"percentage"`
}

// GetAdditiveModifiers yields every additive entry matching stat, in list
// order
func (s *StatsEquipment) GetAdditiveModifiers(stat stats.Stat) []float64 {
	return matching(s.Additive, stat)
}

// GetPercentageModifiers yields every percentage entry matching stat, in
// list order
func (s *StatsEquipment) GetPercentageModifiers(stat stats.Stat) []float64 {
	return matching(s.Percentage, stat)
}

func matching(entries []stats.Modifier, stat stats.Stat) []float64 {
	var values []float64
	for _, m := range entries {
		if m.Stat == stat {
			values = append(values, m.Value)
		}
	}
	return values
}

func (s *StatsEquipment) GetEquipmentType() EquipmentType {
	return EquipmentTypeStats
}

func (s *StatsEquipment) GetKey() string {
	return s.Base.Key
}

func (s *StatsEquipment) GetName() string {
	return s.Base.Name
}

func (s *StatsEquipment) GetDescription() string {
	return s.Base.Description
}

func (s *StatsEquipment) GetIcon() string {
	return s.Base.Icon
}

func (s *StatsEquipment) GetLocation() Location {
	return s.Base.Location
}

func (s *StatsEquipment) IsStackable() bool {
	return s.Base.Stackable
}
