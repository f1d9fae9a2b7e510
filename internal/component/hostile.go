// internal/component/hostile.go
package component

// Hostile представляет вражескую сущность.
type Hostile struct {
	Kind Category // CategoryHostileBasic или CategoryHostileFast
}

// Weapon — перезарядка стреляющей сущности.
// Ready выставляется политикой стрельбы на кадр, в котором Cooldown был прочитан как ноль.
type Weapon struct {
	Cooldown int
	Ready    bool
}
