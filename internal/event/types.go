// internal/event/types.go
package event

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/types"
)

const (
	ProjectileFired   EventType = "ProjectileFired"   // Данные: Shot
	ProjectileExpired EventType = "ProjectileExpired" // Данные: types.EntityID, снаряд ушёл за арену
	HostileSpawned    EventType = "HostileSpawned"    // Данные: Spawn
	HostileDestroyed  EventType = "HostileDestroyed"  // Данные: Kill
	HostileEscaped    EventType = "HostileEscaped"    // Данные: types.EntityID, враг ушёл ниже арены
	PlayerHit         EventType = "PlayerHit"         // Данные: Hit
	GameStopped       EventType = "GameStopped"       // Данные: Report
)

// AllTypes перечисляет все типы событий игры.
var AllTypes = []EventType{
	ProjectileFired,
	ProjectileExpired,
	HostileSpawned,
	HostileDestroyed,
	HostileEscaped,
	PlayerHit,
	GameStopped,
}

// Shot — выстрел игрока или врага.
type Shot struct {
	Projectile types.EntityID
	Shooter    types.EntityID
	Kind       component.Category // категория снаряда
}

// Spawn — появление врага.
type Spawn struct {
	Hostile types.EntityID
	Kind    component.Category
	X, Y    float64
}

// Kill — враг сбит снарядом игрока. X, Y — центр врага.
type Kill struct {
	Hostile    types.EntityID
	Projectile types.EntityID
	Kind       component.Category
	Points     int
	X, Y       float64
}

// Hit — игрок получил попадание вражеским снарядом.
type Hit struct {
	Projectile types.EntityID
	Penalty    int
}

// Report — итог игры.
type Report struct {
	Score  int
	Frames uint64
	Reason string
}
