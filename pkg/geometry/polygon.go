package geometry

import (
	"fmt"
	"slices"
)

// PolygonLocation - положение точки относительно многоугольника.
type PolygonLocation int

const (
	Inside PolygonLocation = iota
	Outside
	OnEdge
	OnVertex
)

func (l PolygonLocation) String() string {
	switch l {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	case OnEdge:
		return "on-edge"
	case OnVertex:
		return "on-vertex"
	}
	return fmt.Sprintf("PolygonLocation(%d)", int(l))
}

// LocatePoint определяет положение q относительно замкнутого многоугольника,
// заданного вершинами по порядку (последняя соединяется с первой).
// Граница никогда не считается Outside.
func LocatePoint(q Point, polygon []Point) PolygonLocation {
	n := len(polygon)
	if n == 0 {
		return Outside
	}
	for _, p := range polygon {
		if p == q {
			return OnVertex
		}
	}
	for i, a := range polygon {
		b := polygon[(i+1)%n]
		if Orientation(a, b, q) == 0 && inSpan(a, b, q) {
			return OnEdge
		}
	}

	// луч из q вправо, полуоткрытое правило для вершин на высоте q.Y
	inside := false
	for i, a := range polygon {
		b := polygon[(i+1)%n]
		if (a.Y > q.Y) == (b.Y > q.Y) {
			continue
		}
		o := Orientation(a, b, q)
		if a.Y < b.Y && o > 0 || a.Y > b.Y && o < 0 {
			inside = !inside
		}
	}
	if inside {
		return Inside
	}
	return Outside
}

// PolygonArea - ориентированная площадь (положительна для обхода против
// часовой стрелки).
func PolygonArea(polygon []Point) float64 {
	var sum float64
	for i, a := range polygon {
		b := polygon[(i+1)%len(polygon)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// VertexCentroid - среднее арифметическое вершин.
func VertexCentroid(points []Point) Point {
	var c Point
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
	}
	k := float64(len(points))
	return Pt(c.X/k, c.Y/k)
}

// SortCounterClockwise упорядочивает точки по углу вокруг center.
func SortCounterClockwise(points []Point, center Point) {
	slices.SortFunc(points, func(a, b Point) int {
		return CompareAngle(center, a, b)
	})
}

// IsSimplePolygon сообщает, что многоугольник имеет хотя бы три различные
// вершины, ненулевую площадь и несмежные стороны не пересекаются.
func IsSimplePolygon(polygon []Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	seen := make(map[Point]struct{}, n)
	for _, p := range polygon {
		if _, ok := seen[p]; ok {
			return false
		}
		seen[p] = struct{}{}
	}

	collinear := true
	for i := 2; i < n && collinear; i++ {
		collinear = Orientation(polygon[0], polygon[1], polygon[i]) == 0
	}
	if collinear {
		return false
	}

	for i := 0; i < n; i++ {
		ei := Line{polygon[i], polygon[(i+1)%n]}
		for j := i + 1; j < n; j++ {
			ej := Line{polygon[j], polygon[(j+1)%n]}
			rel := ei.Intersect(ej)
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				if rel.Relation == Overlapping {
					return false
				}
				continue
			}
			if rel.Relation != Disjoint {
				return false
			}
		}
	}
	return true
}
