package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/event"
)

func newSpawnSystem(w *world) *SpawnSystem {
	return NewSpawnSystem(w.ecs, w.factory, w.dispatcher, w.rng, w.cfg.Hostiles, w.cfg.Arena.Width)
}

func TestSpawnSeed(t *testing.T) {
	w := newWorld(t)
	s := newSpawnSystem(w)

	s.Seed()

	ids := w.ecs.HostileIDs()
	require.Len(t, ids, 2)
	assert.Equal(t, component.CategoryHostileBasic, w.ecs.Hostiles[ids[0]].Kind)
	assert.Equal(t, component.CategoryHostileFast, w.ecs.Hostiles[ids[1]].Kind)
	assert.Equal(t, 2, w.events.count(event.HostileSpawned))
}

func TestSpawnPlacement(t *testing.T) {
	w := newWorld(t)
	s := newSpawnSystem(w)

	for i := 0; i < 200; i++ {
		id := s.Spawn(component.CategoryHostileBasic)
		pos := w.ecs.Positions[id]
		assert.GreaterOrEqual(t, pos.X, 0.0)
		assert.LessOrEqual(t, pos.X, 770.0)
		assert.GreaterOrEqual(t, pos.Y, -100.0)
		assert.LessOrEqual(t, pos.Y, -30.0)
		assert.Equal(t, math.Trunc(pos.X), pos.X)

		speed := w.ecs.Motions[id].Speed
		assert.GreaterOrEqual(t, speed, 3.0)
		assert.LessOrEqual(t, speed, 5.0)
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	w := newWorld(t)
	w.cfg.Hostiles.SpawnOneIn = 1
	s := newSpawnSystem(w)

	for i := 0; i < 50; i++ {
		s.Update()
		assert.LessOrEqual(t, len(w.ecs.Hostiles), 5)
	}
	assert.Len(t, w.ecs.Hostiles, 5)
	assert.Zero(t, s.Update())
}

func TestSpawnTrialCanFail(t *testing.T) {
	w := newWorld(t)
	w.cfg.Hostiles.SpawnOneIn = 1 << 30
	s := newSpawnSystem(w)

	for i := 0; i < 100; i++ {
		assert.Zero(t, s.Update())
	}
	assert.Empty(t, w.ecs.Hostiles)
	assert.Zero(t, w.events.count(event.HostileSpawned))
}

func TestSpawnPicksKind(t *testing.T) {
	tests := []struct {
		name      string
		fastOneIn int
		want      component.Category
	}{
		{"always fast", 1, component.CategoryHostileFast},
		{"never fast", 1 << 30, component.CategoryHostileBasic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			w.cfg.Hostiles.SpawnOneIn = 1
			w.cfg.Hostiles.FastOneIn = tt.fastOneIn
			s := newSpawnSystem(w)

			for i := 0; i < w.cfg.Hostiles.Cap; i++ {
				id := s.Update()
				require.NotZero(t, id)
				assert.Equal(t, tt.want, w.ecs.Hostiles[id].Kind)

				speed := w.ecs.Motions[id].Speed
				if tt.want == component.CategoryHostileFast {
					assert.Equal(t, w.cfg.Hostiles.FastSpeed, speed)
					assert.NotNil(t, w.ecs.Weapons[id])
				} else {
					assert.GreaterOrEqual(t, speed, float64(w.cfg.Hostiles.BasicSpeedMin))
					assert.LessOrEqual(t, speed, float64(w.cfg.Hostiles.BasicSpeedMax))
					assert.Nil(t, w.ecs.Weapons[id])
				}
			}
			assert.Len(t, w.ecs.Hostiles, w.cfg.Hostiles.Cap)
		})
	}
}
