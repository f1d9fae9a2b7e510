// internal/component/player.go
package component

// Player хранит информацию, специфичную для игрока.
type Player struct {
	Speed    float64 // Горизонтальный шаг за кадр
	Cooldown int     // Кадров до следующего разрешённого выстрела
	Score    int     // Может уходить в минус
}
