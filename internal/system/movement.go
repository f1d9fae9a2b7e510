// internal/system/movement.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/types"
)

// MovementSystem продвигает врагов и снаряды по их политикам движения
// и заодно тикает перезарядку у тех, кто умеет стрелять.
type MovementSystem struct {
	ecs       *entity.ECS
	behaviors Behaviors
	bounds    Bounds
}

func NewMovementSystem(ecs *entity.ECS, behaviors Behaviors, bounds Bounds) *MovementSystem {
	return &MovementSystem{ecs: ecs, behaviors: behaviors, bounds: bounds}
}

// Update — сначала все враги, потом все снаряды, каждые по возрастанию id.
func (s *MovementSystem) Update() {
	for _, id := range s.ecs.HostileIDs() {
		s.advance(id, s.ecs.Hostiles[id].Kind)
	}
	for _, id := range s.ecs.ProjectileIDs() {
		s.advance(id, s.ecs.Projectiles[id].Kind)
	}
}

func (s *MovementSystem) advance(id types.EntityID, kind component.Category) {
	b := s.behaviors[kind]
	pos, size, motion := s.ecs.Positions[id], s.ecs.Sizes[id], s.ecs.Motions[id]
	if b.Movement != nil && pos != nil && size != nil && motion != nil {
		b.Movement.Move(pos, *size, motion, s.bounds)
	}
	if b.Fire != nil {
		if w := s.ecs.Weapons[id]; w != nil {
			b.Fire.Tick(w)
		}
	}
}
