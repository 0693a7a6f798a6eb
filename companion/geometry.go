package companion

import "github.com/milk9111/neko/common"

// Point is a location in the render surface's coordinate space. Y grows
// downward.
type Point struct {
	X, Y float64
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Bounds is the extent of the render surface, anchored at (0, 0).
type Bounds struct {
	Width, Height float64
}

// ClampToBounds keeps a companion of the given size fully inside b.
func ClampToBounds(p Point, b Bounds, size Size) Point {
	half := size.Half()
	return Point{
		X: common.Clamp(p.X, half, b.Width-half),
		Y: common.Clamp(p.Y, half, b.Height-half),
	}
}
