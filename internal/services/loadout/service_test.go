package loadout

import (
	"context"
	"testing"

	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	"github.com/Mnemoth42/RPG/internal/domain/stats"
	rpgerr "github.com/Mnemoth42/RPG/internal/errors"
	mockitems "github.com/Mnemoth42/RPG/internal/repositories/items/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEffectiveStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockitems.NewMockRepository(ctrl)
	svc := NewService(&ServiceConfig{Items: repo})

	sword := &equipment.Weapon{
		Base:            equipment.BasicEquipment{Key: "sword", Name: "Sword"},
		Damage:          5,
		PercentageBonus: 10,
	}
	helmet := &equipment.StatsEquipment{
		Base: equipment.BasicEquipment{Key: "helmet", Name: "Helmet", Location: equipment.LocationHelmet},
		Additive: []stats.Modifier{
			{Stat: stats.StatDamage, Value: 2},
			{Stat: stats.StatHealth, Value: 20},
		},
	}

	repo.EXPECT().Get(gomock.Any(), "sword").Return(sword, nil)
	repo.EXPECT().Get(gomock.Any(), "helmet").Return(helmet, nil)

	out, err := svc.EffectiveStats(context.Background(), &EffectiveStatsInput{
		ItemKeys: []string{"sword", "helmet"},
		Base: map[stats.Stat]float64{
			stats.StatDamage: 10,
			stats.StatHealth: 100,
		},
	})
	require.NoError(t, err)

	// (10 + 5 + 2) * 1.10
	assert.InDelta(t, 18.7, out.Stats[stats.StatDamage], 1e-9)
	// 100 + 20, no percentage
	assert.InDelta(t, 120, out.Stats[stats.StatHealth], 1e-9)
	assert.Equal(t, float64(0), out.Stats[stats.StatMana])
}

func TestEffectiveStatsUnknownItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockitems.NewMockRepository(ctrl)
	svc := NewService(&ServiceConfig{Items: repo})

	repo.EXPECT().Get(gomock.Any(), "missing").
		Return(nil, rpgerr.NotFound("item with key 'missing' not found"))

	_, err := svc.EffectiveStats(context.Background(), &EffectiveStatsInput{
		ItemKeys: []string{"missing"},
	})
	assert.True(t, rpgerr.IsNotFound(err))
}

func TestEffectiveStatsNilInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(&ServiceConfig{Items: mockitems.NewMockRepository(ctrl)})

	_, err := svc.EffectiveStats(context.Background(), nil)
	assert.True(t, rpgerr.IsInvalidArgument(err))
}

func TestEffectiveStatsEmptyLoadout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(&ServiceConfig{Items: mockitems.NewMockRepository(ctrl)})

	out, err := svc.EffectiveStats(context.Background(), &EffectiveStatsInput{
		Base: map[stats.Stat]float64{stats.StatHealth: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(100), out.Stats[stats.StatHealth])
}
