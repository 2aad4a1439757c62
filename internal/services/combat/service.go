package combat

//go:generate mockgen -destination=mock/mock.go -package=mockcombat -source=service.go

import (
	"context"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	rpgerr "github.com/Mnemoth42/RPG/internal/errors"
	"github.com/Mnemoth42/RPG/internal/services/equip"
)

// Target is whatever the projectile homes in on. The dispatcher hands it
// through to the spawned projectile untouched; homing and impact are the
// projectile system's business.
type Target interface {
	GetKey() string
}

// Projectile is a spawned projectile instance awaiting its flight data
type Projectile interface {
	// SetTarget aims the projectile and hands it the attacker reference
	// (for kill attribution) and the final damage. The damage arrives
	// fully resolved; no combat math happens after this point.
	SetTarget(target Target, instigator string, damage float64)
}

// ProjectileSpawner instantiates projectiles at a hand socket
type ProjectileSpawner interface {
	Spawn(projectile string, hand equip.Hand) Projectile
}

// Service launches ranged attacks for the currently equipped weapon. The
// melee-vs-ranged branch is the caller's decision, driven by HasProjectile.
type Service interface {
	// HasProjectile reports whether the weapon fires projectiles
	HasProjectile(weapon *equipment.Weapon) bool

	// LaunchProjectile spawns the weapon's projectile at the firing hand
	// and hands it target, instigator, and resolved damage
	LaunchProjectile(ctx context.Context, input *LaunchProjectileInput) (Projectile, error)
}

// LaunchProjectileInput carries everything a launch needs
type LaunchProjectileInput struct {
	Weapon     *equipment.Weapon
	Target     Target
	Instigator string  // attacker reference, credited on a kill
	Damage     float64 // final damage, already adjusted by stat aggregation
}

// ServiceConfig holds configuration for the combat service
type ServiceConfig struct {
	Spawner ProjectileSpawner // Required
}

type service struct {
	spawner ProjectileSpawner
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Spawner == nil {
		panic("projectile spawner is required")
	}

	return &service{
		spawner: cfg.Spawner,
	}
}

func (s *service) HasProjectile(weapon *equipment.Weapon) bool {
	return weapon != nil && weapon.HasProjectile()
}

func (s *service) LaunchProjectile(ctx context.Context, input *LaunchProjectileInput) (Projectile, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input cannot be nil")
	}

	if input.Weapon == nil {
		return nil, rpgerr.InvalidArgument("weapon cannot be nil")
	}

	if !input.Weapon.HasProjectile() {
		return nil, rpgerr.InvalidArgumentf("weapon '%s' has no projectile", input.Weapon.GetKey()).
			WithMeta("weapon_key", input.Weapon.GetKey())
	}

	if input.Target == nil {
		return nil, rpgerr.InvalidArgument("target cannot be nil")
	}

	hand := equip.HandLeft
	if input.Weapon.IsRightHanded() {
		hand = equip.HandRight
	}

	projectile := s.spawner.Spawn(input.Weapon.Projectile, hand)
	projectile.SetTarget(input.Target, input.Instigator, input.Damage)

	return projectile, nil
}
