package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
)

func TestScaleColor(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, DarkenColor(c))
	assert.Equal(t, c, ScaleColor(c, 2))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ScaleColor(c, -1))
}

func TestPaletteColor(t *testing.T) {
	p := NewPalette()
	assert.Equal(t, config.FastHostileColor, p.Color(component.CategoryHostileFast))

	delete(p.Entities, component.CategoryPlayer)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, p.Color(component.CategoryPlayer))
}
