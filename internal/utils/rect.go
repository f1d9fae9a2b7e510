// internal/utils/rect.go
package utils

// Rect — осевой прямоугольник. X, Y — левый верхний угол, ось Y направлена вниз.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right возвращает координату правого края.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom возвращает координату нижнего края.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX возвращает середину прямоугольника по горизонтали.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY возвращает середину прямоугольника по вертикали.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Intersects — у прямоугольников есть общая область ненулевой площади.
// Касание по грани или углу пересечением не считается.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// OutsideVertically — прямоугольник целиком выше верхней границы или ниже нижней.
func (r Rect) OutsideVertically(height float64) bool {
	return r.Bottom() < 0 || r.Y > height
}
