// Package geometry содержит базовые планарные примитивы: точки, отрезки,
// прямоугольники и точные предикаты над ними.
package geometry

import (
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r2"
)

// Point - точка на плоскости. Сравнима через == и годится как ключ мапы.
type Point r2.Point

// Pt - короткий конструктор точки.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) vec() r2.Point { return r2.Point(p) }

func (p Point) Add(q Point) Point { return Point(p.vec().Add(q.vec())) }

func (p Point) Sub(q Point) Point { return Point(p.vec().Sub(q.vec())) }

func (p Point) Mul(k float64) Point { return Point(p.vec().Mul(k)) }

func (p Point) Dot(q Point) float64 { return p.vec().Dot(q.vec()) }

// Cross - z-компонента векторного произведения. Не точная, для точного знака
// используйте Orientation.
func (p Point) Cross(q Point) float64 { return p.vec().Cross(q.vec()) }

func (p Point) Distance(q Point) float64 { return p.Sub(q).vec().Norm() }

func (p Point) SquaredDistance(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// IsFinite сообщает, что обе координаты конечны (не NaN и не Inf).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// CompareExact упорядочивает точки лексикографически: сначала Y, затем X.
// Возвращает -1, 0 или +1.
func CompareExact(a, b Point) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

// SortPoints сортирует точки по CompareExact на месте.
func SortPoints(points []Point) {
	slices.SortFunc(points, CompareExact)
}

// EquivalentPoints сообщает, совпадают ли два набора точек как множества.
func EquivalentPoints(a, b []Point) bool {
	set := make(map[Point]struct{}, len(a))
	for _, p := range a {
		set[p] = struct{}{}
	}
	other := make(map[Point]struct{}, len(b))
	for _, p := range b {
		if _, ok := set[p]; !ok {
			return false
		}
		other[p] = struct{}{}
	}
	return len(set) == len(other)
}
