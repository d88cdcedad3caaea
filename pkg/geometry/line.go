package geometry

import "fmt"

// Line - направленный отрезок от Start к End.
type Line struct {
	Start Point
	End   Point
}

func NewLine(x0, y0, x1, y1 float64) Line {
	return Line{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

func (l Line) Reverse() Line {
	return Line{Start: l.End, End: l.Start}
}

// Canonical возвращает отрезок, направленный от меньшей (по CompareExact)
// точки к большей.
func (l Line) Canonical() Line {
	if CompareExact(l.Start, l.End) > 0 {
		return l.Reverse()
	}
	return l
}

func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

func (l Line) IsDegenerate() bool {
	return l.Start == l.End
}

// Contains сообщает, лежит ли q на отрезке, включая концы.
func (l Line) Contains(q Point) bool {
	return Orientation(l.Start, l.End, q) == 0 && inSpan(l.Start, l.End, q)
}

func (l Line) String() string {
	return fmt.Sprintf("%v-%v", l.Start, l.End)
}

// CompareLines упорядочивает отрезки по началу, затем по концу.
func CompareLines(a, b Line) int {
	if c := CompareExact(a.Start, b.Start); c != 0 {
		return c
	}
	return CompareExact(a.End, b.End)
}

// LineRelation - взаимное положение двух отрезков.
type LineRelation int

const (
	Disjoint LineRelation = iota
	// пересекаются в одной внутренней точке обоих
	Crossing
	// общая точка, являющаяся концом хотя бы одного из отрезков
	Touching
	// коллинеарны и перекрываются больше, чем в одной точке
	Overlapping
)

func (r LineRelation) String() string {
	switch r {
	case Disjoint:
		return "disjoint"
	case Crossing:
		return "crossing"
	case Touching:
		return "touching"
	case Overlapping:
		return "overlapping"
	}
	return fmt.Sprintf("LineRelation(%d)", int(r))
}

// Intersection - результат Line.Intersect. Point задан для Crossing и Touching.
type Intersection struct {
	Relation LineRelation
	Point    Point
}

// Intersect классифицирует пересечение двух отрезков. Классификация точная,
// координаты точки Crossing вычисляются в float64.
func (l Line) Intersect(o Line) Intersection {
	a, b, c, d := l.Start, l.End, o.Start, o.End
	o1 := Orientation(a, b, c)
	o2 := Orientation(a, b, d)
	o3 := Orientation(c, d, a)
	o4 := Orientation(c, d, b)

	if o1 == 0 && o2 == 0 {
		return collinearIntersection(l, o)
	}
	if o1*o2 > 0 || o3*o4 > 0 {
		return Intersection{Relation: Disjoint}
	}
	switch {
	case o1 == 0:
		return Intersection{Relation: Touching, Point: c}
	case o2 == 0:
		return Intersection{Relation: Touching, Point: d}
	case o3 == 0:
		return Intersection{Relation: Touching, Point: a}
	case o4 == 0:
		return Intersection{Relation: Touching, Point: b}
	}

	r := b.Sub(a)
	s := d.Sub(c)
	t := c.Sub(a).Cross(s) / r.Cross(s)
	return Intersection{Relation: Crossing, Point: a.Add(r.Mul(t))}
}

func collinearIntersection(l, o Line) Intersection {
	var shared []Point
	for _, p := range []Point{o.Start, o.End} {
		if inSpan(l.Start, l.End, p) {
			shared = append(shared, p)
		}
	}
	for _, p := range []Point{l.Start, l.End} {
		if inSpan(o.Start, o.End, p) {
			shared = append(shared, p)
		}
	}
	if len(shared) == 0 {
		return Intersection{Relation: Disjoint}
	}
	first := shared[0]
	for _, p := range shared[1:] {
		if p != first {
			return Intersection{Relation: Overlapping}
		}
	}
	return Intersection{Relation: Touching, Point: first}
}

// inSpan проверяет, что q лежит в ограничивающем прямоугольнике отрезка a-b.
func inSpan(a, b, q Point) bool {
	return q.X >= min(a.X, b.X) && q.X <= max(a.X, b.X) &&
		q.Y >= min(a.Y, b.Y) && q.Y <= max(a.Y, b.Y)
}
