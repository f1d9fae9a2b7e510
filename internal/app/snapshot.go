// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/types"
)

// EntityView — копия сущности для отрисовки.
type EntityView struct {
	ID       types.EntityID
	Category component.Category
	X, Y     float64
	W, H     float64
	Color    color.RGBA
}

// EffectView — взрыв на месте сбитого врага.
type EffectView struct {
	X, Y     float64
	Radius   float64
	Progress float64 // 0 — только начался, 1 — закончился
}

// Snapshot — состояние арены после кадра. Отрисовщики получают копию и ECS не трогают.
type Snapshot struct {
	Player      EntityView
	Hostiles    []EntityView
	Projectiles []EntityView
	Effects     []EffectView
	PlayerHit   bool // игрок мигает после попадания
	Cooldown    int  // оставшаяся перезарядка игрока
	CooldownMax int
	HostileCap  int
	Score       int
	Frame       uint64
	Status      component.Status
	Width       float64
	Height      float64
}

// Snapshot собирает снимок; сущности перечислены по возрастанию id.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		CooldownMax: g.Config.Player.FireCooldown,
		HostileCap:  g.Config.Hostiles.Cap,
		Score:       g.Score(),
		Frame:       g.ECS.Frame,
		Status:      g.ECS.Status,
		Width:       g.Config.Arena.Width,
		Height:      g.Config.Arena.Height,
	}
	s.Player, _ = g.view(g.ECS.PlayerID, component.CategoryPlayer)
	if p := g.ECS.Player(); p != nil {
		s.Cooldown = p.Cooldown
	}
	_, s.PlayerHit = g.ECS.DamageFlashes[g.ECS.PlayerID]

	hostileIDs := g.ECS.HostileIDs()
	s.Hostiles = make([]EntityView, 0, len(hostileIDs))
	for _, id := range hostileIDs {
		if v, ok := g.view(id, g.ECS.Hostiles[id].Kind); ok {
			s.Hostiles = append(s.Hostiles, v)
		}
	}

	projectileIDs := g.ECS.ProjectileIDs()
	s.Projectiles = make([]EntityView, 0, len(projectileIDs))
	for _, id := range projectileIDs {
		if v, ok := g.view(id, g.ECS.Projectiles[id].Kind); ok {
			s.Projectiles = append(s.Projectiles, v)
		}
	}

	explosionIDs := g.ECS.ExplosionIDs()
	s.Effects = make([]EffectView, 0, len(explosionIDs))
	for _, id := range explosionIDs {
		ex, pos := g.ECS.Explosions[id], g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		progress := ex.Progress()
		s.Effects = append(s.Effects, EffectView{X: pos.X, Y: pos.Y, Radius: progress * ex.MaxRadius, Progress: progress})
	}
	return s
}

func (g *Game) view(id types.EntityID, kind component.Category) (EntityView, bool) {
	rect, ok := g.ECS.Rect(id)
	if !ok {
		return EntityView{}, false
	}
	v := EntityView{ID: id, Category: kind, X: rect.X, Y: rect.Y, W: rect.W, H: rect.H}
	if r := g.ECS.Renderables[id]; r != nil {
		v.Color = r.Color
	}
	return v, true
}
