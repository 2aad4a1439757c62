// Package catalog turns authored YAML item files into registered item
// definitions. The YAML is design-time configuration; nothing here runs
// per-frame.
package catalog

import (
	"context"
	"os"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	"github.com/Mnemoth42/RPG/internal/domain/stats"
	rpgerr "github.com/Mnemoth42/RPG/internal/errors"
	"github.com/Mnemoth42/RPG/internal/repositories/items"
	"github.com/Mnemoth42/RPG/internal/uuid"
	"gopkg.in/yaml.v3"
)

// File is the top-level YAML document
type File struct {
	Items []Entry `yaml:"items"`
}

// Entry is one authored item. Type selects the variant: "weapon" entries
// use the scalar damage fields, "stats" entries use the modifier lists.
type Entry struct {
	Key         string `yaml:"key"`
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Location    string `yaml:"location"`
	Stackable   bool   `yaml:"stackable"`

	// Weapon fields
	Damage           float64 `yaml:"damage"`
	PercentageBonus  float64 `yaml:"percentage_bonus"`
	Range            float64 `yaml:"range"`
	RightHanded      bool    `yaml:"right_handed"`
	Prefab           string  `yaml:"prefab"`
	AnimatorOverride string  `yaml:"animator_override"`
	Projectile       string  `yaml:"projectile"`

	// Stats item fields
	Additive   []stats.Modifier `yaml:"additive"`
	Percentage []stats.Modifier `yaml:"percentage"`
}

// Loader parses catalog files and registers their items
type Loader struct {
	uuidGenerator uuid.Generator
}

// NewLoader creates a loader. Entries without a key get one assigned from
// the generator.
func NewLoader(generator uuid.Generator) *Loader {
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	return &Loader{
		uuidGenerator: generator,
	}
}

// LoadFile parses a YAML catalog file into item definitions
func (l *Loader) LoadFile(path string) ([]equipment.Equipment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, rpgerr.Wrapf(err, "failed to read catalog file '%s'", path)
	}

	return l.Parse(raw)
}

// Parse decodes YAML catalog bytes into item definitions
func (l *Loader) Parse(raw []byte) ([]equipment.Equipment, error) {
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, rpgerr.Wrap(err, "failed to parse catalog YAML")
	}

	result := make([]equipment.Equipment, 0, len(file.Items))
	for i, entry := range file.Items {
		item, err := l.buildItem(entry)
		if err != nil {
			return nil, rpgerr.Wrapf(err, "invalid catalog entry %d", i).
				WithMeta("entry_index", i).
				WithMeta("entry_key", entry.Key)
		}
		result = append(result, item)
	}

	return result, nil
}

// Seed parses the catalog and registers every item. Duplicate keys follow
// repository semantics: first registration wins, collisions are logged.
func (l *Loader) Seed(ctx context.Context, repo items.Repository, raw []byte) error {
	parsed, err := l.Parse(raw)
	if err != nil {
		return err
	}

	for _, item := range parsed {
		if err := repo.Register(ctx, item); err != nil {
			return rpgerr.Wrapf(err, "failed to register item '%s'", item.GetKey())
		}
	}

	return nil
}

// SeedFile loads a catalog file and registers every item
func (l *Loader) SeedFile(ctx context.Context, repo items.Repository, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return rpgerr.Wrapf(err, "failed to read catalog file '%s'", path)
	}

	return l.Seed(ctx, repo, raw)
}

func (l *Loader) buildItem(entry Entry) (equipment.Equipment, error) {
	key := entry.Key
	if key == "" {
		key = l.uuidGenerator.New()
	}

	base := equipment.BasicEquipment{
		Key:         key,
		Name:        entry.Name,
		Description: entry.Description,
		Icon:        entry.Icon,
		Location:    equipment.Location(entry.Location),
		Stackable:   entry.Stackable,
	}

	switch entry.Type {
	case "weapon":
		base.Location = equipment.LocationWeapon
		return &equipment.Weapon{
			Base:             base,
			Damage:           entry.Damage,
			PercentageBonus:  entry.PercentageBonus,
			Range:            entry.Range,
			RightHanded:      entry.RightHanded,
			Prefab:           entry.Prefab,
			AnimatorOverride: entry.AnimatorOverride,
			Projectile:       entry.Projectile,
		}, nil

	case "stats":
		if !base.Location.IsValid() {
			return nil, rpgerr.Validationf("unknown equip location '%s'", entry.Location)
		}
		if err := validateModifiers(entry.Additive); err != nil {
			return nil, err
		}
		if err := validateModifiers(entry.Percentage); err != nil {
			return nil, err
		}
		return &equipment.StatsEquipment{
			Base:       base,
			Additive:   entry.Additive,
			Percentage: entry.Percentage,
		}, nil

	default:
		return nil, rpgerr.Validationf("unknown item type '%s'", entry.Type)
	}
}

func validateModifiers(entries []stats.Modifier) error {
	for _, m := range entries {
		if !m.Stat.IsValid() {
			return rpgerr.Validationf("unknown stat '%s'", m.Stat)
		}
	}
	return nil
}
