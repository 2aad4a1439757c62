package equipment

// BasicEquipment carries the fields every item definition shares: a stable
// key, display metadata, and the slot it occupies. The key is assigned once
// by the registering catalog and is immutable afterwards.
type BasicEquipment struct {
	Key         string   `json:"key" yaml:"key"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Icon        string   `json:"icon" yaml:"icon"`
	Location    Location `json:"location" yaml:"location"`
	Stackable   bool     `json:"stackable" yaml:"stackable"`
}

func (e *BasicEquipment) GetEquipmentType() EquipmentType {
	return EquipmentTypeUnknown
}

func (e *BasicEquipment) GetKey() string {
	return e.Key
}

func (e *BasicEquipment) GetName() string {
	return e.Name
}

func (e *BasicEquipment) GetDescription() string {
	return e.Description
}

func (e *BasicEquipment) GetIcon() string {
	return e.Icon
}

func (e *BasicEquipment) GetLocation() Location {
	return e.Location
}

func (e *BasicEquipment) IsStackable() bool {
	return e.Stackable
}
