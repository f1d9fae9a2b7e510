package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/utils"
)

func TestBounceMovement(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}
	size := component.NewSize(30, 30)

	tests := []struct {
		name   string
		x, dx  float64
		wantX  float64
		wantDX float64
	}{
		{"inside stays", 100, 1, 103, 1},
		{"right edge flips", 768, 1, 771, -1},
		{"exactly at right edge keeps", 767, 1, 770, 1},
		{"left edge flips", 1, -1, -2, 1},
		{"exactly at zero keeps", 3, -1, 0, -1},
		{"still does not flip", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := &component.Position{X: tt.x, Y: 10}
			m := &component.Motion{Speed: 3, DX: tt.dx, DY: 1}
			BounceMovement{}.Move(pos, size, m, bounds)
			assert.Equal(t, tt.wantX, pos.X)
			assert.Equal(t, 13.0, pos.Y)
			assert.Equal(t, tt.wantDX, m.DX)
			assert.Equal(t, 1.0, m.DY)
		})
	}
}

func TestStraightMovement(t *testing.T) {
	pos := &component.Position{X: 50, Y: 100}
	m := &component.Motion{Speed: 5, DY: component.CategoryProjectilePlayer.VerticalDirection()}
	StraightMovement{}.Move(pos, component.NewSize(10, 5), m, Bounds{Width: 800, Height: 600})
	assert.Equal(t, 50.0, pos.X)
	assert.Equal(t, 95.0, pos.Y)

	m.DY = component.CategoryProjectileHostile.VerticalDirection()
	m.Speed = 3
	StraightMovement{}.Move(pos, component.NewSize(10, 5), m, Bounds{Width: 800, Height: 600})
	assert.Equal(t, 98.0, pos.Y)
}

func TestReloadFire(t *testing.T) {
	fire := &ReloadFire{rng: utils.NewPRNGService(7), Min: 30, Max: 90}
	w := &component.Weapon{Cooldown: 2}

	assert.False(t, fire.Tick(w))
	assert.Equal(t, 1, w.Cooldown)
	assert.False(t, fire.Tick(w))
	assert.Equal(t, 0, w.Cooldown)
	assert.False(t, w.Ready)

	assert.True(t, fire.Tick(w))
	assert.True(t, w.Ready)
	assert.GreaterOrEqual(t, w.Cooldown, 30)
	assert.LessOrEqual(t, w.Cooldown, 90)

	assert.False(t, fire.Tick(w))
	assert.False(t, w.Ready)
}

func TestPlayerMovementClamp(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}
	size := component.NewSize(50, 50)

	tests := []struct {
		name        string
		x           float64
		left, right bool
		want        float64
	}{
		{"right", 400, false, true, 405},
		{"left", 400, true, false, 395},
		{"both cancel", 400, true, true, 400},
		{"clamped at zero", 2, true, false, 0},
		{"clamped at right", 748, false, true, 750},
		{"idle", 123, false, false, 123},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := &component.Position{X: tt.x, Y: 550}
			PlayerMovement{}.Steer(pos, size, 5, tt.left, tt.right, bounds)
			assert.Equal(t, tt.want, pos.X)
			assert.Equal(t, 550.0, pos.Y)
		})
	}
}

func TestBehaviorsCanFire(t *testing.T) {
	w := newWorld(t)
	assert.True(t, w.behaviors.CanFire(component.CategoryHostileFast))
	assert.False(t, w.behaviors.CanFire(component.CategoryHostileBasic))
	assert.False(t, w.behaviors.CanFire(component.CategoryProjectilePlayer))
	assert.False(t, w.behaviors.CanFire(component.CategoryPlayer))
}
