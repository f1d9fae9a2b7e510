package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 1, H: 1}, true},
		{"same", base, true},
		{"touch right edge", Rect{X: 10, Y: 0, W: 5, H: 10}, false},
		{"touch bottom edge", Rect{X: 0, Y: 10, W: 10, H: 5}, false},
		{"touch corner", Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"sliver", Rect{X: 9.5, Y: 9.5, W: 5, H: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "symmetric")
		})
	}
}

func TestRectOutsideVertically(t *testing.T) {
	assert.True(t, Rect{Y: -11, H: 10}.OutsideVertically(600))
	assert.False(t, Rect{Y: -10, H: 10}.OutsideVertically(600))
	assert.False(t, Rect{Y: 600, H: 10}.OutsideVertically(600))
	assert.True(t, Rect{Y: 600.5, H: 10}.OutsideVertically(600))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 750))
	assert.Equal(t, 750.0, Clamp(900, 0, 750))
	assert.Equal(t, 12.5, Clamp(12.5, 0, 750))
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 100, Y: 547.5, W: 10, H: 5}
	assert.Equal(t, 105.0, r.CenterX())
	assert.Equal(t, 550.0, r.CenterY())
}
