// Package subdivision реализует планарное разбиение на полуребрах (DCEL).
//
// Все связи хранятся как целочисленные индексы в плотных массивах вершин,
// полуребер и граней. Полуребра 2k и 2k+1 - близнецы, грань 0 всегда
// внешняя (неограниченная).
package subdivision

import (
	"math"
	"slices"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
	"github.com/pkg/errors"
)

const none = -1

type vertex struct {
	point geometry.Point
	// первое исходящее полуребро в порядке против часовой стрелки от оси +X
	edge int
}

type halfEdge struct {
	origin int
	twin   int
	next   int
	prev   int
	face   int
}

type face struct {
	// none для внешней грани
	outer int
	inner []int
}

// Subdivision неизменяемо после построения и безопасно для конкурентного чтения.
type Subdivision struct {
	vertices    []vertex
	edges       []halfEdge
	faces       []face
	vertexIndex map[geometry.Point]int
}

// Construct строит разбиение из набора неориентированных отрезков.
// Повторяющиеся отрезки (в любом направлении) учитываются один раз.
// Отрезки не должны пересекаться во внутренних точках.
func Construct(lines []geometry.Line) (*Subdivision, error) {
	s := &Subdivision{vertexIndex: make(map[geometry.Point]int)}

	seen := make(map[geometry.Line]struct{}, len(lines))
	for i, line := range lines {
		if !line.Start.IsFinite() || !line.End.IsFinite() {
			return nil, errors.Wrapf(ErrInvalidLine, "line %d %v: non-finite coordinate", i, line)
		}
		if line.IsDegenerate() {
			return nil, errors.Wrapf(ErrInvalidLine, "line %d %v: zero length", i, line)
		}
		key := line.Canonical()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		a := s.addVertex(key.Start)
		b := s.addVertex(key.End)
		id := len(s.edges)
		s.edges = append(s.edges,
			halfEdge{origin: a, twin: id + 1, next: none, prev: none, face: none},
			halfEdge{origin: b, twin: id, next: none, prev: none, face: none},
		)
	}

	s.linkEdges()
	s.createFaces()
	return s, nil
}

// FromPolygons строит разбиение из границ многоугольников. Общие стороны
// соседних многоугольников становятся одним ребром.
func FromPolygons(polygons [][]geometry.Point) (*Subdivision, error) {
	var lines []geometry.Line
	for i, polygon := range polygons {
		if len(polygon) < 3 {
			return nil, errors.Wrapf(ErrInvalidLine, "polygon %d: %d vertices", i, len(polygon))
		}
		for j, p := range polygon {
			lines = append(lines, geometry.Line{Start: p, End: polygon[(j+1)%len(polygon)]})
		}
	}
	return Construct(lines)
}

func (s *Subdivision) addVertex(p geometry.Point) int {
	if id, ok := s.vertexIndex[p]; ok {
		return id
	}
	id := len(s.vertices)
	s.vertices = append(s.vertices, vertex{point: p, edge: none})
	s.vertexIndex[p] = id
	return id
}

func (s *Subdivision) pointOf(edge int) geometry.Point {
	return s.vertices[s.edges[edge].origin].point
}

func (s *Subdivision) destOf(edge int) geometry.Point {
	return s.pointOf(s.edges[edge].twin)
}

// linkEdges сортирует исходящие полуребра каждой вершины против часовой
// стрелки и связывает next/prev: next(e) - исходящее полуребро, предшествующее
// twin(e) в этом порядке.
func (s *Subdivision) linkEdges() {
	outgoing := make([][]int, len(s.vertices))
	for id, e := range s.edges {
		outgoing[e.origin] = append(outgoing[e.origin], id)
	}

	for v, list := range outgoing {
		origin := s.vertices[v].point
		slices.SortFunc(list, func(a, b int) int {
			return geometry.CompareAngle(origin, s.destOf(a), s.destOf(b))
		})
		s.vertices[v].edge = list[0]

		for i, out := range list {
			prevOut := list[(i+len(list)-1)%len(list)]
			in := s.edges[out].twin
			s.edges[in].next = prevOut
			s.edges[prevOut].prev = in
		}
	}
}

// createFaces обходит все циклы. Цикл - внешняя граница компоненты, если
// содержит близнеца первого исходящего полуребра в своей наименьшей вершине:
// в этой вершине он охватывает направление вниз, что невозможно для
// ограниченной грани. Остальные циклы - ограниченные грани 1..k в порядке
// обнаружения; внешние границы становятся внутренними циклами наименьшей
// содержащей их грани.
func (s *Subdivision) createFaces() {
	s.faces = []face{{outer: none}}

	cycleOf := make([]int, len(s.edges))
	for i := range cycleOf {
		cycleOf[i] = none
	}

	var boundaries []int
	cycle := 0
	for id := range s.edges {
		if cycleOf[id] != none {
			continue
		}
		lowest := id
		for e := id; ; {
			cycleOf[e] = cycle
			if geometry.CompareExact(s.pointOf(e), s.pointOf(lowest)) < 0 {
				lowest = e
			}
			e = s.edges[e].next
			if e == id {
				break
			}
		}
		first := s.vertices[s.edges[lowest].origin].edge
		if cycleOf[s.edges[first].twin] == cycle {
			boundaries = append(boundaries, id)
		} else {
			s.setCycleFace(id, len(s.faces))
			s.faces = append(s.faces, face{outer: id})
		}
		cycle++
	}

	if len(boundaries) == 0 {
		return
	}

	polygons := make([][]geometry.Point, len(s.faces))
	areas := make([]float64, len(s.faces))
	for f := 1; f < len(s.faces); f++ {
		polygons[f] = s.cyclePoints(s.faces[f].outer)
		areas[f] = math.Abs(geometry.PolygonArea(polygons[f]))
	}

	for _, boundary := range boundaries {
		lowest := s.pointOf(boundary)
		for e := s.edges[boundary].next; e != boundary; e = s.edges[e].next {
			if geometry.CompareExact(s.pointOf(e), lowest) < 0 {
				lowest = s.pointOf(e)
			}
		}

		container := 0
		for f := 1; f < len(s.faces); f++ {
			if geometry.LocatePoint(lowest, polygons[f]) != geometry.Inside {
				continue
			}
			if container == 0 || areas[f] < areas[container] {
				container = f
			}
		}
		s.setCycleFace(boundary, container)
		s.faces[container].inner = append(s.faces[container].inner, boundary)
	}
}

func (s *Subdivision) setCycleFace(start, f int) {
	for e := start; ; {
		s.edges[e].face = f
		e = s.edges[e].next
		if e == start {
			return
		}
	}
}

// cyclePoints без проверки замкнутости, только для только что связанного разбиения.
func (s *Subdivision) cyclePoints(start int) []geometry.Point {
	var points []geometry.Point
	for e := start; ; {
		points = append(points, s.pointOf(e))
		e = s.edges[e].next
		if e == start {
			return points
		}
	}
}

// ToLines возвращает по одному канонически направленному отрезку на каждое
// ребро в порядке ребер.
func (s *Subdivision) ToLines() []geometry.Line {
	lines := make([]geometry.Line, 0, len(s.edges)/2)
	for id := 0; id < len(s.edges); id += 2 {
		lines = append(lines, geometry.Line{Start: s.pointOf(id), End: s.destOf(id)}.Canonical())
	}
	return lines
}

func (s *Subdivision) VertexCount() int   { return len(s.vertices) }
func (s *Subdivision) HalfEdgeCount() int { return len(s.edges) }
func (s *Subdivision) FaceCount() int     { return len(s.faces) }

// Faces возвращает все грани по возрастанию идентификатора; Faces()[0] - внешняя.
func (s *Subdivision) Faces() []Face {
	faces := make([]Face, len(s.faces))
	for id := range s.faces {
		faces[id] = Face{s: s, id: id}
	}
	return faces
}

func (s *Subdivision) Face(id int) (Face, error) {
	if id < 0 || id >= len(s.faces) {
		return Face{}, errors.Wrapf(ErrIndexOutOfRange, "face %d of %d", id, len(s.faces))
	}
	return Face{s: s, id: id}, nil
}

// OuterFace возвращает неограниченную грань.
func (s *Subdivision) OuterFace() Face {
	return Face{s: s, id: 0}
}

func (s *Subdivision) HalfEdges() []HalfEdge {
	edges := make([]HalfEdge, len(s.edges))
	for id := range s.edges {
		edges[id] = HalfEdge{s: s, id: id}
	}
	return edges
}

func (s *Subdivision) HalfEdge(id int) (HalfEdge, error) {
	if id < 0 || id >= len(s.edges) {
		return HalfEdge{}, errors.Wrapf(ErrIndexOutOfRange, "half-edge %d of %d", id, len(s.edges))
	}
	return HalfEdge{s: s, id: id}, nil
}

func (s *Subdivision) Vertices() []Vertex {
	vertices := make([]Vertex, len(s.vertices))
	for id := range s.vertices {
		vertices[id] = Vertex{s: s, id: id}
	}
	return vertices
}

func (s *Subdivision) Vertex(id int) (Vertex, error) {
	if id < 0 || id >= len(s.vertices) {
		return Vertex{}, errors.Wrapf(ErrIndexOutOfRange, "vertex %d of %d", id, len(s.vertices))
	}
	return Vertex{s: s, id: id}, nil
}

// FindVertex ищет вершину с точно совпадающими координатами.
func (s *Subdivision) FindVertex(p geometry.Point) (Vertex, bool) {
	id, ok := s.vertexIndex[p]
	if !ok {
		return Vertex{}, false
	}
	return Vertex{s: s, id: id}, true
}

// FindFace возвращает наименьшую ограниченную грань, чья внешняя граница
// содержит q (включая границу), либо внешнюю грань.
func (s *Subdivision) FindFace(q geometry.Point) Face {
	best, bestArea := 0, math.Inf(1)
	for f := 1; f < len(s.faces); f++ {
		polygon := s.cyclePoints(s.faces[f].outer)
		if geometry.LocatePoint(q, polygon) == geometry.Outside {
			continue
		}
		if area := math.Abs(geometry.PolygonArea(polygon)); area < bestArea {
			best, bestArea = f, area
		}
	}
	return Face{s: s, id: best}
}
