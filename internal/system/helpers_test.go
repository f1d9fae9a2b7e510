package system

import (
	"testing"

	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type world struct {
	cfg        *config.Config
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	behaviors  Behaviors
	factory    *EntityFactory
	bounds     Bounds
	events     *recorder
}

func newWorld(t *testing.T) *world {
	t.Helper()
	cfg := config.Default()
	rng := utils.NewPRNGService(42)
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.SubscribeAll(rec)
	behaviors := NewBehaviors(cfg, rng)
	return &world{
		cfg:        cfg,
		ecs:        ecs,
		rng:        rng,
		dispatcher: dispatcher,
		behaviors:  behaviors,
		factory:    NewEntityFactory(ecs, cfg, rng, behaviors),
		bounds:     Bounds{Width: cfg.Arena.Width, Height: cfg.Arena.Height},
		events:     rec,
	}
}
