// internal/app/game.go
package app

import (
	"errors"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/input"
	"go-sky-shooter/internal/system"
	"go-sky-shooter/internal/utils"
)

// ErrStopped возвращается из Step, если игра уже остановлена.
var ErrStopped = errors.New("game: stopped")

// Причины остановки, попадают в event.Report.
const (
	ReasonTerminate  = "terminate"
	ReasonInput      = "input unavailable"
	ReasonCanceled   = "canceled"
	ReasonFrameLimit = "frame limit"
	ReasonRender     = "render failed"
)

// Game хранит состояние арены и выполняет один шаг симуляции за кадр.
type Game struct {
	Config          *config.Config
	ECS             *entity.ECS
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	Behaviors       system.Behaviors
	Factory         *system.EntityFactory
	PlayerSystem    *system.PlayerSystem
	MovementSystem  *system.MovementSystem
	WeaponSystem    *system.WeaponSystem
	CleanupSystem   *system.CleanupSystem
	CollisionSystem *system.CollisionSystem
	SpawnSystem     *system.SpawnSystem
	EffectSystem    *system.VisualEffectSystem
}

// NewGame создаёт арену: игрока в стартовой позиции и стартовую пару врагов.
// dispatcher может быть nil, тогда создаётся свой. Подписчиков стоит
// добавить до NewGame, чтобы они увидели появление стартовых врагов.
func NewGame(cfg *config.Config, rng *utils.PRNGService, dispatcher *event.Dispatcher) *Game {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if rng == nil {
		rng = utils.NewPRNGService(cfg.Seed)
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	ecs := entity.NewECS()
	bounds := system.Bounds{Width: cfg.Arena.Width, Height: cfg.Arena.Height}
	behaviors := system.NewBehaviors(cfg, rng)
	factory := system.NewEntityFactory(ecs, cfg, rng, behaviors)

	g := &Game{
		Config:          cfg,
		ECS:             ecs,
		Rng:             rng,
		EventDispatcher: dispatcher,
		Behaviors:       behaviors,
		Factory:         factory,
		PlayerSystem:    system.NewPlayerSystem(ecs, factory, dispatcher, bounds, cfg.Player.FireCooldown),
		MovementSystem:  system.NewMovementSystem(ecs, behaviors, bounds),
		WeaponSystem:    system.NewWeaponSystem(ecs, factory, dispatcher),
		CleanupSystem:   system.NewCleanupSystem(ecs, dispatcher, bounds, cfg.Hostiles.DespawnBelowArena),
		CollisionSystem: system.NewCollisionSystem(ecs, dispatcher, cfg.Scoring),
		SpawnSystem:     system.NewSpawnSystem(ecs, factory, dispatcher, rng, cfg.Hostiles, cfg.Arena.Width),
		EffectSystem:    system.NewVisualEffectSystem(ecs),
	}
	dispatcher.Subscribe(event.HostileDestroyed, g.EffectSystem)
	dispatcher.Subscribe(event.PlayerHit, g.EffectSystem)

	factory.NewPlayer()
	g.SpawnSystem.Seed()
	return g
}

// Step продвигает симуляцию на один кадр в строгом порядке.
// Намерение Terminate останавливает игру, и кадр не выполняется.
func (g *Game) Step(in input.Intent) error {
	if g.ECS.Status == component.Stopped {
		return ErrStopped
	}
	if in.Terminate {
		g.Stop(ReasonTerminate)
		return nil
	}

	g.PlayerSystem.ApplyIntent(in)
	g.PlayerSystem.TickCooldown()
	g.MovementSystem.Update()
	g.WeaponSystem.Update()
	g.CleanupSystem.Update()
	g.CollisionSystem.Update()
	g.SpawnSystem.Update()
	g.EffectSystem.Update()

	g.ECS.Frame++
	return nil
}

// Stop переводит игру в Stopped. Повторный вызов ничего не делает.
func (g *Game) Stop(reason string) {
	if g.ECS.Status == component.Stopped {
		return
	}
	g.ECS.Status = component.Stopped
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameStopped, Data: event.Report{
		Score:  g.Score(),
		Frames: g.ECS.Frame,
		Reason: reason,
	}})
}

func (g *Game) Status() component.Status {
	return g.ECS.Status
}

func (g *Game) Frame() uint64 {
	return g.ECS.Frame
}

func (g *Game) Score() int {
	if p := g.ECS.Player(); p != nil {
		return p.Score
	}
	return 0
}
