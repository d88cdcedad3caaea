package voronoi

import (
	"slices"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
)

// closeCells строит многоугольник каждой ячейки: концы ее уцелевших ребер
// плюс принадлежащие ей углы прямоугольника, по кругу вокруг центра вершин.
// Ячейка выпукла, поэтому такой порядок совпадает с обходом границы.
func (f *fortune) closeCells(bbox boundingBox) (empty int) {
	endpointCells := make(map[geometry.Point][]*cell)
	for _, e := range f.edges {
		if e.removed {
			continue
		}
		for _, p := range []geometry.Point{e.va, e.vb} {
			endpointCells[p] = appendCell(endpointCells[p], e.left)
			endpointCells[p] = appendCell(endpointCells[p], e.right)
		}
	}

	// угол, являющийся концом ребра, принадлежит ячейкам этих ребер,
	// любой другой - ближайшим сайтам (всем при равенстве расстояний)
	owned := make(map[*cell][]geometry.Point)
	for _, corner := range bbox.rect.Corners() {
		owners, ok := endpointCells[corner]
		if !ok {
			owners = f.nearestCells(corner)
		}
		for _, c := range owners {
			owned[c] = append(owned[c], corner)
		}
	}

	for _, c := range f.cells {
		c.prepare()

		var points []geometry.Point
		for _, h := range c.halfEdges {
			points = append(points, h.edge.va, h.edge.vb)
		}
		points = append(points, owned[c]...)

		geometry.SortPoints(points)
		points = slices.Compact(points)
		if len(points) < 3 || collinear(points) {
			c.region = nil
			empty++
			continue
		}
		geometry.SortCounterClockwise(points, geometry.VertexCentroid(points))
		c.region = points
	}
	return empty
}

// nearestCells - ячейки сайтов, ближайших к p. Расстояния сравниваются
// точно, поэтому несколько ячеек возвращаются только при настоящем равенстве.
func (f *fortune) nearestCells(p geometry.Point) []*cell {
	var nearest []*cell
	for _, c := range f.cells {
		if len(nearest) == 0 {
			nearest = append(nearest, c)
			continue
		}
		switch geometry.CompareDistance(p, c.site, nearest[0].site) {
		case -1:
			nearest = append(nearest[:0], c)
		case 0:
			nearest = append(nearest, c)
		}
	}
	return nearest
}

func appendCell(cells []*cell, c *cell) []*cell {
	if slices.Contains(cells, c) {
		return cells
	}
	return append(cells, c)
}

func collinear(points []geometry.Point) bool {
	for i := 2; i < len(points); i++ {
		if geometry.Orientation(points[0], points[1], points[i]) != 0 {
			return false
		}
	}
	return true
}

// delaunayEdges - по одному ребру на пару сайтов, чьи непустые ячейки
// разделены уцелевшим ребром ненулевой длины.
func (f *fortune) delaunayEdges() ([]geometry.Line, []Edge) {
	seen := make(map[[2]int]struct{})
	var lines []geometry.Line
	var edges []Edge
	for _, e := range f.edges {
		if e.removed || e.left.region == nil || e.right.region == nil {
			continue
		}
		pair := [2]int{e.left.index, e.right.index}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		edges = append(edges, Edge{Line: e.line().Canonical(), Sites: pair})
		if _, ok := seen[pair]; ok {
			continue
		}
		seen[pair] = struct{}{}
		lines = append(lines, geometry.Line{Start: e.left.site, End: e.right.site}.Canonical())
	}
	slices.SortFunc(lines, geometry.CompareLines)
	slices.SortFunc(edges, func(a, b Edge) int {
		if a.Sites[0] != b.Sites[0] {
			return a.Sites[0] - b.Sites[0]
		}
		if a.Sites[1] != b.Sites[1] {
			return a.Sites[1] - b.Sites[1]
		}
		return geometry.CompareLines(a.Line, b.Line)
	})
	return lines, edges
}

// neighbors - индексы соседей по Делоне против часовой стрелки.
func (c *cell) neighbors() []int {
	var out []int
	for _, h := range c.halfEdges {
		n := h.neighbor()
		if n.region == nil || c.region == nil || slices.Contains(out, n.index) {
			continue
		}
		out = append(out, n.index)
	}
	return out
}
