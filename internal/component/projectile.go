// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд.
// Kind задаётся при создании и больше не меняется: от него зависит направление полёта.
type Projectile struct {
	Kind Category // CategoryProjectilePlayer или CategoryProjectileHostile
}
