// internal/component/category.go
package component

// Category — тег варианта сущности.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryHostileBasic
	CategoryHostileFast
	CategoryProjectilePlayer
	CategoryProjectileHostile
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryHostileBasic:
		return "hostile_basic"
	case CategoryHostileFast:
		return "hostile_fast"
	case CategoryProjectilePlayer:
		return "projectile_player"
	case CategoryProjectileHostile:
		return "projectile_hostile"
	default:
		return "unknown"
	}
}

// IsHostile — враг любого вида.
func (c Category) IsHostile() bool {
	return c == CategoryHostileBasic || c == CategoryHostileFast
}

// IsProjectile — снаряд любого владельца.
func (c Category) IsProjectile() bool {
	return c == CategoryProjectilePlayer || c == CategoryProjectileHostile
}

// VerticalDirection возвращает направление полёта снаряда по оси Y:
// -1 (вверх) для снарядов игрока, +1 (вниз) для вражеских, 0 для остальных категорий.
func (c Category) VerticalDirection() float64 {
	switch c {
	case CategoryProjectilePlayer:
		return -1
	case CategoryProjectileHostile:
		return 1
	default:
		return 0
	}
}
