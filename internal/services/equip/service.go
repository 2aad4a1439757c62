package equip

//go:generate mockgen -destination=mock/mock.go -package=mockequip -source=service.go

import (
	"context"
	"sync"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	rpgerr "github.com/Mnemoth42/RPG/internal/errors"
)

// Hand names the socket a weapon visual attaches to
type Hand string

const (
	HandRight Hand = "right"
	HandLeft  Hand = "left"
)

// Handle is a live weapon visual. The service holds the handle of the
// currently attached visual and is solely responsible for releasing it
// before attaching a new one.
type Handle interface {
	// Release destroys the visual and detaches it from its socket
	Release()
}

// Spawner instantiates weapon visuals. Implemented by the engine layer,
// which owns the actual socket transforms.
type Spawner interface {
	Spawn(prefab string, hand Hand) Handle
}

// Animator controls the character's animation set
type Animator interface {
	// ApplyOverride installs a weapon-specific animation override
	ApplyOverride(override string)

	// RestoreBase strips any installed override and returns to the
	// default controller
	RestoreBase()
}

// Service manages the character's weapon slot: at most one weapon visual
// exists at a time, and the animator override always matches the weapon
// currently equipped.
type Service interface {
	// Equip swaps in the given weapon: the previous visual is released,
	// the new one (if the weapon has a prefab) is spawned on the hand its
	// handedness selects, and the animator override is reconciled. The
	// returned handle is nil for weapons without a visual.
	Equip(ctx context.Context, weapon *equipment.Weapon) (Handle, error)

	// Unequip releases the current visual and restores base animations
	Unequip(ctx context.Context) error

	// EquippedWeapon returns the weapon currently equipped, nil if none
	EquippedWeapon() *equipment.Weapon
}

// ServiceConfig holds configuration for the equip service
type ServiceConfig struct {
	Spawner  Spawner  // Required
	Animator Animator // Required
}

type service struct {
	spawner  Spawner
	animator Animator

	mu         sync.Mutex
	current    Handle
	weapon     *equipment.Weapon
	overridden bool
}

// NewService creates a new equip service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Spawner == nil {
		panic("spawner is required")
	}
	if cfg.Animator == nil {
		panic("animator is required")
	}

	return &service{
		spawner:  cfg.Spawner,
		animator: cfg.Animator,
	}
}

func (s *service) Equip(ctx context.Context, weapon *equipment.Weapon) (Handle, error) {
	if weapon == nil {
		return nil, rpgerr.InvalidArgument("weapon cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseCurrent()

	if weapon.HasVisual() {
		hand := HandLeft
		if weapon.IsRightHanded() {
			hand = HandRight
		}
		s.current = s.spawner.Spawn(weapon.Prefab, hand)
	}

	s.reconcileAnimator(weapon)
	s.weapon = weapon

	return s.current, nil
}

func (s *service) Unequip(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseCurrent()
	if s.overridden {
		s.animator.RestoreBase()
		s.overridden = false
	}
	s.weapon = nil

	return nil
}

func (s *service) EquippedWeapon() *equipment.Weapon {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.weapon
}

// releaseCurrent destroys the previously spawned visual, if any. Caller
// holds the lock.
func (s *service) releaseCurrent() {
	if s.current != nil {
		s.current.Release()
		s.current = nil
	}
}

// reconcileAnimator installs the new weapon's override, or restores the
// base controller when the new weapon has none and a previous weapon left
// one installed. Caller holds the lock.
func (s *service) reconcileAnimator(weapon *equipment.Weapon) {
	if weapon.HasAnimatorOverride() {
		s.animator.ApplyOverride(weapon.AnimatorOverride)
		s.overridden = true
		return
	}

	if s.overridden {
		s.animator.RestoreBase()
		s.overridden = false
	}
}
