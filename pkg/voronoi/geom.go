package voronoi

import (
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
)

// noVertex - отсутствующий конец ребра
var noVertex = geometry.Pt(math.Inf(1), math.Inf(1))

// edge - ребро диаграммы между двумя ячейками. До отсечения один или оба
// конца могут быть noVertex (луч или прямая).
type edge struct {
	left  *cell
	right *cell
	va    geometry.Point
	vb    geometry.Point
	// ребро не попало в прямоугольник или схлопнулось при сварке
	removed bool
}

func newEdge(left, right *cell) *edge {
	return &edge{
		left:  left,
		right: right,
		va:    noVertex,
		vb:    noVertex,
	}
}

func (e *edge) line() geometry.Line {
	return geometry.Line{Start: e.va, End: e.vb}
}

// halfEdge - сторона ребра, видимая из ячейки cell.
type halfEdge struct {
	cell *cell
	edge *edge
	// направление на соседний сайт
	angle float64
}

func newHalfEdge(e *edge, own, other *cell) *halfEdge {
	return &halfEdge{
		cell:  own,
		edge:  e,
		angle: math.Atan2(other.site.Y-own.site.Y, other.site.X-own.site.X),
	}
}

func (h *halfEdge) neighbor() *cell {
	if h.edge.left == h.cell {
		return h.edge.right
	}
	return h.edge.left
}
