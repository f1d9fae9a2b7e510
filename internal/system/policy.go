// internal/system/policy.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/utils"
)

// Bounds — размеры арены.
type Bounds struct {
	Width, Height float64
}

// MovementPolicy вычисляет новое положение сущности за один кадр.
// Политика может менять направление в Motion (отскок), но не скорость.
type MovementPolicy interface {
	Move(pos *component.Position, size component.Size, m *component.Motion, b Bounds)
}

// FirePolicy — возможность стрелять. Есть не у всех категорий.
type FirePolicy interface {
	// Reload возвращает новое значение перезарядки.
	Reload() int
	// Tick продвигает перезарядку на один кадр и сообщает, стреляет ли сущность в этом кадре.
	Tick(w *component.Weapon) bool
}

// Behavior — набор политик одной категории.
type Behavior struct {
	Movement MovementPolicy
	Fire     FirePolicy // nil — категория не стреляет
}

// Behaviors сопоставляет категории и их политики.
type Behaviors map[component.Category]Behavior

// NewBehaviors собирает политики по умолчанию для врагов и снарядов.
// Игрок управляется намерениями и сюда не входит, см. PlayerMovement.
func NewBehaviors(cfg *config.Config, rng *utils.PRNGService) Behaviors {
	reload := &ReloadFire{rng: rng, Min: cfg.Hostiles.ReloadMin, Max: cfg.Hostiles.ReloadMax}
	return Behaviors{
		component.CategoryHostileBasic:      {Movement: BounceMovement{}},
		component.CategoryHostileFast:       {Movement: BounceMovement{}, Fire: reload},
		component.CategoryProjectilePlayer:  {Movement: StraightMovement{}},
		component.CategoryProjectileHostile: {Movement: StraightMovement{}},
	}
}

// CanFire сообщает, есть ли у категории политика стрельбы.
func (b Behaviors) CanFire(kind component.Category) bool {
	return b[kind].Fire != nil
}

// StraightMovement двигает сущность по направлению без каких-либо проверок границ.
// Снаряды получают DX = 0, поэтому летят строго по вертикали.
type StraightMovement struct{}

func (StraightMovement) Move(pos *component.Position, _ component.Size, m *component.Motion, _ Bounds) {
	pos.X += m.DX * m.Speed
	pos.Y += m.DY * m.Speed
}

// BounceMovement — движение врага. После шага, если прямоугольник вылез за левый
// или правый край, горизонтальное направление меняет знак. DY не трогаем никогда.
type BounceMovement struct{}

func (BounceMovement) Move(pos *component.Position, size component.Size, m *component.Motion, b Bounds) {
	pos.X += m.DX * m.Speed
	pos.Y += m.DY * m.Speed
	if pos.X < 0 || pos.X+size.W > b.Width {
		m.DX = -m.DX
	}
}

// ReloadFire — стрельба по перезарядке. Ноль, прочитанный в начале кадра, означает выстрел,
// после чего сразу начинается новая перезарядка из [Min, Max].
type ReloadFire struct {
	rng      *utils.PRNGService
	Min, Max int
}

func (f *ReloadFire) Reload() int {
	return f.rng.IntRange(f.Min, f.Max)
}

func (f *ReloadFire) Tick(w *component.Weapon) bool {
	ready := w.Cooldown == 0
	if ready {
		w.Cooldown = f.Reload()
	} else if w.Cooldown > 0 {
		w.Cooldown--
	}
	w.Ready = ready
	return ready
}

// PlayerMovement сдвигает игрока по горизонтали на Speed за каждое активное намерение
// и удерживает прямоугольник внутри ширины арены.
type PlayerMovement struct{}

func (PlayerMovement) Steer(pos *component.Position, size component.Size, speed float64, left, right bool, b Bounds) {
	if left {
		pos.X -= speed
	}
	if right {
		pos.X += speed
	}
	pos.X = utils.Clamp(pos.X, 0, b.Width-size.W)
}
