// internal/system/visual_effect.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
)

const (
	FlashFrames     = 8
	ExplosionFrames = 20
	ExplosionRadius = 30.0
)

// VisualEffectSystem управляет визуальными эффектами: вспышкой игрока при попадании
// и взрывами на месте сбитых врагов. На симуляцию эффекты не влияют.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.Kill:
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{X: data.X, Y: data.Y}
		s.ecs.Explosions[id] = &component.Explosion{Duration: ExplosionFrames, MaxRadius: ExplosionRadius}
	case event.Hit:
		if s.ecs.PlayerID != 0 {
			s.ecs.DamageFlashes[s.ecs.PlayerID] = &component.DamageFlash{Duration: FlashFrames}
		}
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update() {
	// Обновляем таймеры вспышек урона
	for id, flash := range s.ecs.DamageFlashes {
		flash.Frames++
		if flash.Frames >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, ex := range s.ecs.Explosions {
		ex.Frames++
		if ex.Frames >= ex.Duration {
			// Эффект завершился, удаляем его
			s.ecs.RemoveEntity(id)
		}
	}
}
