// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/internal/utils"
)

type ECS struct {
	Frame       uint64
	NextID      types.EntityID
	PlayerID    types.EntityID // 0, пока игрок не создан
	Status      component.Status
	Positions   map[types.EntityID]*component.Position
	Sizes       map[types.EntityID]*component.Size
	Motions     map[types.EntityID]*component.Motion
	Weapons     map[types.EntityID]*component.Weapon
	Renderables map[types.EntityID]*component.Renderable
	Players     map[types.EntityID]*component.Player
	Hostiles    map[types.EntityID]*component.Hostile
	Projectiles map[types.EntityID]*component.Projectile

	// Визуальные эффекты, на симуляцию не влияют
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Explosions    map[types.EntityID]*component.Explosion
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Status:      component.Running,
		Positions:   make(map[types.EntityID]*component.Position),
		Sizes:       make(map[types.EntityID]*component.Size),
		Motions:     make(map[types.EntityID]*component.Motion),
		Weapons:     make(map[types.EntityID]*component.Weapon),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Players:     make(map[types.EntityID]*component.Player),
		Hostiles:    make(map[types.EntityID]*component.Hostile),
		Projectiles: make(map[types.EntityID]*component.Projectile),

		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Explosions:    make(map[types.EntityID]*component.Explosion),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ компонентов.
// Возвращает false, если сущности уже нет: повторное удаление ничего не делает.
func (ecs *ECS) RemoveEntity(id types.EntityID) bool {
	if _, ok := ecs.Positions[id]; !ok {
		return false
	}
	delete(ecs.Positions, id)
	delete(ecs.Sizes, id)
	delete(ecs.Motions, id)
	delete(ecs.Weapons, id)
	delete(ecs.Renderables, id)
	delete(ecs.Players, id)
	delete(ecs.Hostiles, id)
	delete(ecs.Projectiles, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Explosions, id)
	return true
}

// Player возвращает компонент единственного игрока или nil.
func (ecs *ECS) Player() *component.Player {
	return ecs.Players[ecs.PlayerID]
}

// Rect возвращает ограничивающий прямоугольник сущности.
func (ecs *ECS) Rect(id types.EntityID) (utils.Rect, bool) {
	pos, hasPos := ecs.Positions[id]
	size, hasSize := ecs.Sizes[id]
	if !hasPos || !hasSize {
		return utils.Rect{}, false
	}
	return size.Rect(*pos), true
}

// HostileIDs возвращает идентификаторы врагов по возрастанию.
// Системы обходят сущности в этом порядке, чтобы при одном сиде результат был воспроизводим.
func (ecs *ECS) HostileIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Hostiles))
}

// ExplosionIDs возвращает идентификаторы взрывов по возрастанию.
func (ecs *ECS) ExplosionIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Explosions))
}

// ProjectileIDs возвращает идентификаторы снарядов по возрастанию.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Projectiles))
}
