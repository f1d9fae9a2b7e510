// internal/system/factory.go
package system

import (
	"fmt"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/internal/utils"
)

// EntityFactory собирает сущности из компонентов и кладёт их в ECS.
type EntityFactory struct {
	ecs       *entity.ECS
	cfg       *config.Config
	rng       *utils.PRNGService
	behaviors Behaviors
}

func NewEntityFactory(ecs *entity.ECS, cfg *config.Config, rng *utils.PRNGService, behaviors Behaviors) *EntityFactory {
	return &EntityFactory{ecs: ecs, cfg: cfg, rng: rng, behaviors: behaviors}
}

// NewPlayer создаёт игрока в стартовой позиции. Игрок в ECS ровно один.
func (f *EntityFactory) NewPlayer() types.EntityID {
	if f.ecs.PlayerID != 0 {
		panic("system: player already exists")
	}
	id := f.ecs.NewEntity()
	size := component.NewSize(f.cfg.Player.Width, f.cfg.Player.Height)
	f.ecs.Positions[id] = &component.Position{X: f.cfg.Player.StartX, Y: f.cfg.Player.StartY}
	f.ecs.Sizes[id] = &size
	f.ecs.Players[id] = &component.Player{Speed: f.cfg.Player.Speed}
	f.ecs.Renderables[id] = &component.Renderable{Color: config.PlayerColor}
	f.ecs.PlayerID = id
	return id
}

// NewHostile создаёт врага с левым верхним углом в (x, y).
// Горизонтальное направление выбирается случайно из {-1, 0, 1}, вертикальное всегда 1.
func (f *EntityFactory) NewHostile(kind component.Category, x, y, speed float64) types.EntityID {
	if !kind.IsHostile() {
		panic(fmt.Sprintf("system: %s is not a hostile category", kind))
	}
	id := f.ecs.NewEntity()
	size := component.NewSize(f.cfg.Hostiles.Width, f.cfg.Hostiles.Height)
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Sizes[id] = &size
	f.ecs.Motions[id] = &component.Motion{
		Speed: speed,
		DX:    float64(f.rng.Intn(3) - 1),
		DY:    1,
	}
	f.ecs.Hostiles[id] = &component.Hostile{Kind: kind}

	clr := config.BasicHostileColor
	if fire := f.behaviors[kind].Fire; fire != nil {
		f.ecs.Weapons[id] = &component.Weapon{Cooldown: fire.Reload()}
		clr = config.FastHostileColor
	}
	f.ecs.Renderables[id] = &component.Renderable{Color: clr}
	return id
}

// NewProjectile создаёт снаряд с центром в точке (centerX, edgeY).
// Для игрока edgeY — его верхняя грань, для врага — нижняя.
func (f *EntityFactory) NewProjectile(kind component.Category, centerX, edgeY float64) types.EntityID {
	var speed float64
	var clr = config.PlayerProjectileColor
	switch kind {
	case component.CategoryProjectilePlayer:
		speed = f.cfg.Projectiles.PlayerSpeed
	case component.CategoryProjectileHostile:
		speed = f.cfg.Projectiles.HostileSpeed
		clr = config.HostileProjectileColor
	default:
		panic(fmt.Sprintf("system: %s is not a projectile category", kind))
	}

	id := f.ecs.NewEntity()
	size := component.NewSize(f.cfg.Projectiles.Width, f.cfg.Projectiles.Height)
	f.ecs.Positions[id] = &component.Position{X: centerX - size.W/2, Y: edgeY - size.H/2}
	f.ecs.Sizes[id] = &size
	f.ecs.Motions[id] = &component.Motion{Speed: speed, DY: kind.VerticalDirection()}
	f.ecs.Projectiles[id] = &component.Projectile{Kind: kind}
	f.ecs.Renderables[id] = &component.Renderable{Color: clr}
	return id
}
