// internal/system/cleanup.go
package system

import (
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
)

// CleanupSystem убирает снаряды, целиком покинувшие арену по вертикали.
// Враги, ушедшие вниз, удаляются только если включён despawnHostiles.
type CleanupSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	bounds          Bounds
	despawnHostiles bool
}

func NewCleanupSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, bounds Bounds, despawnHostiles bool) *CleanupSystem {
	return &CleanupSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		bounds:          bounds,
		despawnHostiles: despawnHostiles,
	}
}

func (s *CleanupSystem) Update() {
	for _, id := range s.ecs.ProjectileIDs() {
		rect, ok := s.ecs.Rect(id)
		if !ok || !rect.OutsideVertically(s.bounds.Height) {
			continue
		}
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileExpired, Data: id})
	}

	if !s.despawnHostiles {
		return
	}
	for _, id := range s.ecs.HostileIDs() {
		rect, ok := s.ecs.Rect(id)
		if !ok || rect.Y <= s.bounds.Height {
			continue
		}
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.HostileEscaped, Data: id})
	}
}
