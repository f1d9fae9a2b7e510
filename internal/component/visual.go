// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Frames   int // Сколько кадров эффект уже активен
	Duration int // Общая продолжительность эффекта
}

// Explosion — расширяющееся кольцо на месте сбитого врага.
type Explosion struct {
	Frames    int
	Duration  int
	MaxRadius float64
}

// Progress — доля прошедшего времени эффекта в [0, 1].
func (e Explosion) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	return float64(e.Frames) / float64(e.Duration)
}
