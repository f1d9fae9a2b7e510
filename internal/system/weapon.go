// internal/system/weapon.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
)

// WeaponSystem выпускает снаряды врагов, чьё оружие готово в этом кадре.
type WeaponSystem struct {
	ecs             *entity.ECS
	factory         *EntityFactory
	eventDispatcher *event.Dispatcher
}

func NewWeaponSystem(ecs *entity.ECS, factory *EntityFactory, eventDispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{ecs: ecs, factory: factory, eventDispatcher: eventDispatcher}
}

// Update возвращает число выпущенных снарядов.
func (s *WeaponSystem) Update() int {
	fired := 0
	for _, id := range s.ecs.HostileIDs() {
		w := s.ecs.Weapons[id]
		if w == nil || !w.Ready {
			continue
		}
		w.Ready = false
		rect, ok := s.ecs.Rect(id)
		if !ok {
			continue
		}
		projID := s.factory.NewProjectile(component.CategoryProjectileHostile, rect.CenterX(), rect.Bottom())
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.Shot{
			Projectile: projID,
			Shooter:    id,
			Kind:       component.CategoryProjectileHostile,
		}})
		fired++
	}
	return fired
}
