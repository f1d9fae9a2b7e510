// internal/system/player_system.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/input"
)

// PlayerSystem применяет намерения игрока: движение по горизонтали и выстрел.
type PlayerSystem struct {
	ecs             *entity.ECS
	factory         *EntityFactory
	eventDispatcher *event.Dispatcher
	bounds          Bounds
	fireCooldown    int
	steer           PlayerMovement
}

func NewPlayerSystem(ecs *entity.ECS, factory *EntityFactory, eventDispatcher *event.Dispatcher, bounds Bounds, fireCooldown int) *PlayerSystem {
	return &PlayerSystem{
		ecs:             ecs,
		factory:         factory,
		eventDispatcher: eventDispatcher,
		bounds:          bounds,
		fireCooldown:    fireCooldown,
	}
}

// ApplyIntent двигает игрока и, если перезарядка закончилась, стреляет.
// Возвращает true, если снаряд был создан.
func (s *PlayerSystem) ApplyIntent(in input.Intent) bool {
	id := s.ecs.PlayerID
	player := s.ecs.Player()
	pos, size := s.ecs.Positions[id], s.ecs.Sizes[id]
	if player == nil || pos == nil || size == nil {
		return false
	}

	s.steer.Steer(pos, *size, player.Speed, in.MoveLeft, in.MoveRight, s.bounds)

	if !in.Fire || player.Cooldown > 0 {
		return false
	}
	player.Cooldown = s.fireCooldown
	rect := size.Rect(*pos)
	projID := s.factory.NewProjectile(component.CategoryProjectilePlayer, rect.CenterX(), rect.Y)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.Shot{
		Projectile: projID,
		Shooter:    id,
		Kind:       component.CategoryProjectilePlayer,
	}})
	return true
}

// TickCooldown уменьшает перезарядку игрока на один кадр, не опускаясь ниже нуля.
func (s *PlayerSystem) TickCooldown() {
	if player := s.ecs.Player(); player != nil && player.Cooldown > 0 {
		player.Cooldown--
	}
}
