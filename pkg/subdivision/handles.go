package subdivision

import (
	"fmt"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
	"github.com/pkg/errors"
)

// Vertex, HalfEdge и Face - легкие ссылки на элементы конкретного разбиения.
// Нулевое значение не ссылается ни на что.

type Vertex struct {
	s  *Subdivision
	id int
}

func (v Vertex) ID() int                   { return v.id }
func (v Vertex) Subdivision() *Subdivision { return v.s }
func (v Vertex) Point() geometry.Point     { return v.s.vertices[v.id].point }
func (v Vertex) String() string            { return fmt.Sprintf("vertex %d %v", v.id, v.Point()) }
func (v Vertex) Edge() HalfEdge            { return HalfEdge{s: v.s, id: v.s.vertices[v.id].edge} }

// OutgoingEdges - исходящие полуребра против часовой стрелки.
func (v Vertex) OutgoingEdges() []HalfEdge {
	var out []HalfEdge
	first := v.s.vertices[v.id].edge
	for e := first; ; {
		out = append(out, HalfEdge{s: v.s, id: e})
		// следующее против часовой стрелки: twin(prev(e))
		e = v.s.edges[v.s.edges[e].prev].twin
		if e == first || len(out) > len(v.s.edges) {
			return out
		}
	}
}

type HalfEdge struct {
	s  *Subdivision
	id int
}

func (e HalfEdge) ID() int                   { return e.id }
func (e HalfEdge) Subdivision() *Subdivision { return e.s }
func (e HalfEdge) IsValid() bool             { return e.s != nil && e.id >= 0 && e.id < len(e.s.edges) }

func (e HalfEdge) Origin() Vertex      { return Vertex{s: e.s, id: e.s.edges[e.id].origin} }
func (e HalfEdge) Destination() Vertex { return e.Twin().Origin() }
func (e HalfEdge) Twin() HalfEdge      { return HalfEdge{s: e.s, id: e.s.edges[e.id].twin} }
func (e HalfEdge) Next() HalfEdge      { return HalfEdge{s: e.s, id: e.s.edges[e.id].next} }
func (e HalfEdge) Prev() HalfEdge      { return HalfEdge{s: e.s, id: e.s.edges[e.id].prev} }
func (e HalfEdge) Face() Face          { return Face{s: e.s, id: e.s.edges[e.id].face} }

func (e HalfEdge) Line() geometry.Line {
	return geometry.Line{Start: e.s.pointOf(e.id), End: e.s.destOf(e.id)}
}

func (e HalfEdge) String() string {
	return fmt.Sprintf("half-edge %d %v", e.id, e.Line())
}

// CyclePolygon возвращает начала полуребер цикла next, начиная с e.
// Если цикл не замыкается за число шагов, равное числу полуребер,
// возвращается *ValidationError.
func (e HalfEdge) CyclePolygon() ([]geometry.Point, error) {
	if !e.IsValid() {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "half-edge %d", e.id)
	}
	s := e.s
	limit := len(s.edges)
	var polygon []geometry.Point
	for id := e.id; ; {
		polygon = append(polygon, s.pointOf(id))
		id = s.edges[id].next
		if id == e.id {
			return polygon, nil
		}
		if len(polygon) > limit || id < 0 || id >= limit {
			return nil, invalid(InvariantCycle, "half-edge", e.id, "cycle does not close after %d steps", len(polygon))
		}
	}
}

// Locate классифицирует q относительно многоугольника цикла e.
func (e HalfEdge) Locate(q geometry.Point) (geometry.PolygonLocation, error) {
	polygon, err := e.CyclePolygon()
	if err != nil {
		return geometry.Outside, err
	}
	return geometry.LocatePoint(q, polygon), nil
}

type Face struct {
	s  *Subdivision
	id int
}

func (f Face) ID() int                   { return f.id }
func (f Face) Subdivision() *Subdivision { return f.s }
func (f Face) IsUnbounded() bool         { return f.s.faces[f.id].outer == none }

func (f Face) String() string {
	return fmt.Sprintf("face %d", f.id)
}

// OuterEdge возвращает полуребро внешней границы грани; ok == false для
// неограниченной грани.
func (f Face) OuterEdge() (HalfEdge, bool) {
	outer := f.s.faces[f.id].outer
	if outer == none {
		return HalfEdge{}, false
	}
	return HalfEdge{s: f.s, id: outer}, true
}

// InnerEdges - по одному полуребру на каждый внутренний цикл (дыру).
func (f Face) InnerEdges() []HalfEdge {
	inner := f.s.faces[f.id].inner
	edges := make([]HalfEdge, len(inner))
	for i, id := range inner {
		edges[i] = HalfEdge{s: f.s, id: id}
	}
	return edges
}

// Polygon - многоугольник внешней границы. Для неограниченной грани - nil.
func (f Face) Polygon() ([]geometry.Point, error) {
	edge, ok := f.OuterEdge()
	if !ok {
		return nil, nil
	}
	return edge.CyclePolygon()
}
