package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/event"
)

func TestCleanupProjectiles(t *testing.T) {
	w := newWorld(t)
	cs := NewCleanupSystem(w.ecs, w.dispatcher, w.bounds, false)

	gone := w.factory.NewProjectile(component.CategoryProjectilePlayer, 100, -3)       // низ выше верхней грани
	touching := w.factory.NewProjectile(component.CategoryProjectilePlayer, 200, -2.5) // низ ровно на нуле
	low := w.factory.NewProjectile(component.CategoryProjectileHostile, 300, 603)
	inside := w.factory.NewProjectile(component.CategoryProjectileHostile, 400, 602.5) // верх ровно на 600

	cs.Update()
	cs.Update()

	assert.NotContains(t, w.ecs.Projectiles, gone)
	assert.NotContains(t, w.ecs.Positions, low)
	assert.Contains(t, w.ecs.Projectiles, touching)
	assert.Contains(t, w.ecs.Projectiles, inside)
	assert.Equal(t, 2, w.events.count(event.ProjectileExpired))
}

func TestCleanupHostilesBelowArena(t *testing.T) {
	tests := []struct {
		name    string
		despawn bool
		want    int
	}{
		{"kept by default", false, 1},
		{"despawned when enabled", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			cs := NewCleanupSystem(w.ecs, w.dispatcher, w.bounds, tt.despawn)
			w.factory.NewHostile(component.CategoryHostileBasic, 100, 601, 3)
			w.factory.NewHostile(component.CategoryHostileBasic, 100, 590, 3)

			cs.Update()

			assert.Len(t, w.ecs.Hostiles, tt.want+1)
			assert.Equal(t, 1-tt.want, w.events.count(event.HostileEscaped))
		})
	}
}
