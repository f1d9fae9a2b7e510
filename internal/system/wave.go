// internal/system/wave.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/internal/utils"
)

// SpawnSystem поддерживает популяцию врагов: не больше Cap одновременно,
// новый враг появляется с шансом 1/SpawnOneIn за кадр.
type SpawnSystem struct {
	ecs             *entity.ECS
	factory         *EntityFactory
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	cfg             config.HostileConfig
	arenaWidth      float64
}

func NewSpawnSystem(ecs *entity.ECS, factory *EntityFactory, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, cfg config.HostileConfig, arenaWidth float64) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		factory:         factory,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		cfg:             cfg,
		arenaWidth:      arenaWidth,
	}
}

// Seed — стартовая популяция: один обычный и один быстрый враг, без оглядки на лимит.
func (s *SpawnSystem) Seed() {
	s.Spawn(component.CategoryHostileBasic)
	s.Spawn(component.CategoryHostileFast)
}

// Update возвращает id появившегося врага или 0.
func (s *SpawnSystem) Update() types.EntityID {
	if len(s.ecs.Hostiles) >= s.cfg.Cap {
		return 0
	}
	if !s.rng.OneIn(s.cfg.SpawnOneIn) {
		return 0
	}
	if s.rng.OneIn(s.cfg.FastOneIn) {
		return s.Spawn(component.CategoryHostileFast)
	}
	return s.Spawn(component.CategoryHostileBasic)
}

// Spawn создаёт врага над верхним краем арены в случайной целочисленной позиции.
func (s *SpawnSystem) Spawn(kind component.Category) types.EntityID {
	x := float64(s.rng.IntRange(0, int(s.arenaWidth-s.cfg.Width)))
	y := float64(s.rng.IntRange(s.cfg.SpawnYMin, s.cfg.SpawnYMax))
	speed := s.cfg.FastSpeed
	if kind != component.CategoryHostileFast {
		speed = float64(s.rng.IntRange(s.cfg.BasicSpeedMin, s.cfg.BasicSpeedMax))
	}

	id := s.factory.NewHostile(kind, x, y, speed)
	s.eventDispatcher.Dispatch(event.Event{Type: event.HostileSpawned, Data: event.Spawn{
		Hostile: id,
		Kind:    kind,
		X:       x,
		Y:       y,
	}})
	return id
}
