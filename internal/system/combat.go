// internal/system/combat.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
)

// CollisionSystem разрешает столкновения за кадр в два прохода:
// сначала игрок против вражеских снарядов, затем снаряды игрока против врагов.
// Касание краями столкновением не считается.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scoring         config.ScoringConfig
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, scoring config.ScoringConfig) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, eventDispatcher: eventDispatcher, scoring: scoring}
}

func (s *CollisionSystem) Update() {
	s.resolvePlayerHits()
	s.resolveHostileHits()
}

func (s *CollisionSystem) resolvePlayerHits() {
	player := s.ecs.Player()
	playerRect, ok := s.ecs.Rect(s.ecs.PlayerID)
	if player == nil || !ok {
		return
	}
	for _, id := range s.ecs.ProjectileIDs() {
		if s.ecs.Projectiles[id].Kind != component.CategoryProjectileHostile {
			continue
		}
		rect, ok := s.ecs.Rect(id)
		if !ok || !playerRect.Intersects(rect) {
			continue
		}
		s.ecs.RemoveEntity(id)
		player.Score -= s.scoring.HitPenalty
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: event.Hit{
			Projectile: id,
			Penalty:    s.scoring.HitPenalty,
		}})
	}
}

// resolveHostileHits: снаряды по возрастанию id, каждый уничтожает не более одного врага —
// живого пересекающегося с наименьшим id. Уничтоженные в этом проходе
// сущности дальше не участвуют.
func (s *CollisionSystem) resolveHostileHits() {
	player := s.ecs.Player()
	hostiles := s.ecs.HostileIDs()
	for _, projID := range s.ecs.ProjectileIDs() {
		proj, alive := s.ecs.Projectiles[projID]
		if !alive || proj.Kind != component.CategoryProjectilePlayer {
			continue
		}
		projRect, ok := s.ecs.Rect(projID)
		if !ok {
			continue
		}
		for _, hostileID := range hostiles {
			hostile, alive := s.ecs.Hostiles[hostileID]
			if !alive {
				continue
			}
			hostileRect, ok := s.ecs.Rect(hostileID)
			if !ok || !projRect.Intersects(hostileRect) {
				continue
			}
			points := s.Points(hostile.Kind)
			s.ecs.RemoveEntity(hostileID)
			s.ecs.RemoveEntity(projID)
			if player != nil {
				player.Score += points
			}
			s.eventDispatcher.Dispatch(event.Event{Type: event.HostileDestroyed, Data: event.Kill{
				Hostile:    hostileID,
				Projectile: projID,
				Kind:       hostile.Kind,
				Points:     points,
				X:          hostileRect.CenterX(),
				Y:          hostileRect.CenterY(),
			}})
			break
		}
	}
}

// Points — награда за уничтожение врага категории kind.
func (s *CollisionSystem) Points(kind component.Category) int {
	if kind == component.CategoryHostileFast {
		return s.scoring.FastKill
	}
	return s.scoring.BasicKill
}
