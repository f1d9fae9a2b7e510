// Package starfield — медленно прокручиваемый мерцающий звёздный фон.
package starfield

import (
	"math"

	"github.com/aquilax/go-perlin"

	"go-sky-shooter/internal/utils"
)

const (
	alpha   = 2.0 // Сглаживание шума
	beta    = 2.0 // Частота шума
	octaves = int32(3)

	twinkleRate = 0.03 // скорость мерцания по кадрам
	minSpeed    = 0.2
	maxSpeed    = 1.0
)

// Star — звезда в пикселях арены, Brightness в [0, 1].
type Star struct {
	X, Y       float64
	Brightness float64
	Speed      float64
}

type Field struct {
	noise  *perlin.Perlin
	stars  []Star
	width  float64
	height float64
}

// New раскладывает count звёзд по арене. Одинаковый seed даёт одинаковое небо.
func New(seed int64, width, height float64, count int) *Field {
	rng := utils.NewPRNGService(seed)
	f := &Field{
		noise:  perlin.NewPerlin(alpha, beta, octaves, rng.Seed()),
		stars:  make([]Star, count),
		width:  width,
		height: height,
	}
	for i := range f.stars {
		f.stars[i] = Star{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * height,
			Speed: minSpeed + rng.Float64()*(maxSpeed-minSpeed),
		}
	}
	return f
}

// At возвращает звёзды в кадре frame. Исходные позиции не меняются.
func (f *Field) At(frame uint64) []Star {
	out := make([]Star, len(f.stars))
	t := float64(frame)
	for i, s := range f.stars {
		s.Y = math.Mod(s.Y+s.Speed*t, f.height)
		n := f.noise.Noise2D(float64(i)*0.71, t*twinkleRate)
		s.Brightness = math.Max(0, math.Min(1, (n+1)/2))
		out[i] = s
	}
	return out
}

func (f *Field) Len() int {
	return len(f.stars)
}
