package equipment

type EquipmentType string

const (
	EquipmentTypeWeapon  EquipmentType = "weapon"
	EquipmentTypeStats   EquipmentType = "stats"
	EquipmentTypeUnknown EquipmentType = ""
)

// Equipment is an authored item definition. Definitions are created at
// design time and read many times at runtime; they are never mutated
// during gameplay.
type Equipment interface {
	GetEquipmentType() EquipmentType
	GetKey() string
	GetName() string
	GetDescription() string
	GetIcon() string
	GetLocation() Location
	IsStackable() bool
}
