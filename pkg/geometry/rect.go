package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Rect - осепараллельный прямоугольник [MinX, MaxX] x [MinY, MaxY].
type Rect struct {
	r r2.Rect
}

// NewRect не переупорядочивает границы: прямоугольник с max < min
// считается невалидным (см. IsValid).
func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{r: r2.Rect{
		X: r1.Interval{Lo: minX, Hi: maxX},
		Y: r1.Interval{Lo: minY, Hi: maxY},
	}}
}

// RectFromPoints возвращает наименьший прямоугольник, содержащий обе точки.
func RectFromPoints(a, b Point) Rect {
	return Rect{r: r2.RectFromPoints(a.vec(), b.vec())}
}

func (r Rect) MinX() float64 { return r.r.X.Lo }
func (r Rect) MinY() float64 { return r.r.Y.Lo }
func (r Rect) MaxX() float64 { return r.r.X.Hi }
func (r Rect) MaxY() float64 { return r.r.Y.Hi }

func (r Rect) Width() float64  { return r.r.X.Length() }
func (r Rect) Height() float64 { return r.r.Y.Length() }

func (r Rect) Min() Point    { return Point(r.r.Lo()) }
func (r Rect) Max() Point    { return Point(r.r.Hi()) }
func (r Rect) Center() Point { return Point(r.r.Center()) }

// IsValid сообщает, что границы конечны, а ширина и высота положительны.
func (r Rect) IsValid() bool {
	for _, v := range []float64{r.MinX(), r.MinY(), r.MaxX(), r.MaxY()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width() > 0 && r.Height() > 0
}

// Contains включает границу.
func (r Rect) Contains(p Point) bool {
	return r.r.ContainsPoint(p.vec())
}

// Clamp возвращает ближайшую к p точку прямоугольника.
func (r Rect) Clamp(p Point) Point {
	return Point(r.r.ClampPoint(p.vec()))
}

// AddPoint расширяет прямоугольник до p.
func (r Rect) AddPoint(p Point) Rect {
	return Rect{r: r.r.AddPoint(p.vec())}
}

// Corners возвращает углы против часовой стрелки, начиная с (MinX, MinY).
func (r Rect) Corners() [4]Point {
	var corners [4]Point
	for i, v := range r.r.Vertices() {
		corners[i] = Point(v)
	}
	return corners
}

// OnBoundary сообщает, что точка точно лежит на одной из сторон.
func (r Rect) OnBoundary(p Point) bool {
	if !r.Contains(p) {
		return false
	}
	return p.X == r.MinX() || p.X == r.MaxX() || p.Y == r.MinY() || p.Y == r.MaxY()
}

// IsCorner сообщает, что точка точно совпадает с углом.
func (r Rect) IsCorner(p Point) bool {
	return (p.X == r.MinX() || p.X == r.MaxX()) && (p.Y == r.MinY() || p.Y == r.MaxY())
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", r.MinX(), r.MaxX(), r.MinY(), r.MaxY())
}
