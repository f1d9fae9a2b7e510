package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/input"
)

func TestPlayerFireAndCooldown(t *testing.T) {
	w := newWorld(t)
	id := w.factory.NewPlayer()
	ps := NewPlayerSystem(w.ecs, w.factory, w.dispatcher, w.bounds, w.cfg.Player.FireCooldown)
	fire := input.Intent{Fire: true}

	require.True(t, ps.ApplyIntent(fire))
	assert.Equal(t, 10, w.ecs.Player().Cooldown)
	require.Len(t, w.ecs.Projectiles, 1)

	playerRect, _ := w.ecs.Rect(id)
	projRect, _ := w.ecs.Rect(w.ecs.ProjectileIDs()[0])
	assert.Equal(t, playerRect.CenterX(), projRect.CenterX())
	assert.Equal(t, playerRect.Y, projRect.CenterY())

	for i := 0; i < 9; i++ {
		ps.TickCooldown()
		assert.False(t, ps.ApplyIntent(fire))
	}
	assert.Len(t, w.ecs.Projectiles, 1)

	ps.TickCooldown()
	assert.Equal(t, 0, w.ecs.Player().Cooldown)
	ps.TickCooldown()
	assert.Equal(t, 0, w.ecs.Player().Cooldown)

	assert.True(t, ps.ApplyIntent(fire))
	assert.Len(t, w.ecs.Projectiles, 2)
	assert.Equal(t, 2, w.events.count(event.ProjectileFired))
}

func TestPlayerSteering(t *testing.T) {
	w := newWorld(t)
	id := w.factory.NewPlayer()
	ps := NewPlayerSystem(w.ecs, w.factory, w.dispatcher, w.bounds, w.cfg.Player.FireCooldown)

	for i := 0; i < 200; i++ {
		ps.ApplyIntent(input.Intent{MoveRight: true})
	}
	assert.Equal(t, 750.0, w.ecs.Positions[id].X)

	for i := 0; i < 200; i++ {
		ps.ApplyIntent(input.Intent{MoveLeft: true})
	}
	assert.Equal(t, 0.0, w.ecs.Positions[id].X)
	assert.Equal(t, 550.0, w.ecs.Positions[id].Y)
	assert.Empty(t, w.ecs.Projectiles)
}
