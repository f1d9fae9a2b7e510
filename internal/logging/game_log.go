package logging

import (
	"go-sky-shooter/internal/event"
)

// GameLog пишет игровые события в лог. Частые события идут на уровне DEBUG.
type GameLog struct {
	log *Logger
}

func NewGameLog(log *Logger) *GameLog {
	return &GameLog{log: log}
}

func (g *GameLog) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.Spawn:
		g.log.Debug("hostile spawned", "id", data.Hostile, "kind", data.Kind, "x", data.X, "y", data.Y)
	case event.Shot:
		g.log.Debug("projectile fired", "id", data.Projectile, "shooter", data.Shooter, "kind", data.Kind)
	case event.Kill:
		g.log.Debug("hostile destroyed", "id", data.Hostile, "kind", data.Kind, "points", data.Points)
	case event.Hit:
		g.log.Debug("player hit", "projectile", data.Projectile, "penalty", data.Penalty)
	case event.Report:
		g.log.Info("game stopped", "score", data.Score, "frames", data.Frames, "reason", data.Reason)
	default:
		g.log.Debug("event", "type", e.Type, "data", e.Data)
	}
}
