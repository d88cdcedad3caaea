package voronoi

import (
	"sort"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
	"github.com/unixpickle/model3d/model2d"
)

// приоритет представителя кластера при сварке
const (
	weldCorner = iota
	weldSide
	weldInterior
)

// weldVertices сливает концы ребер, лежащие ближе eps друг к другу, и
// убирает ребра, схлопнувшиеся в точку. Углы прямоугольника участвуют в
// сварке и всегда остаются представителями своих кластеров, точки на
// сторонах побеждают внутренние. Возвращает число слитых точек и
// схлопнувшихся ребер.
func (f *fortune) weldVertices(bbox boundingBox, eps float64) (merged, collapsed int) {
	corners := bbox.rect.Corners()
	set := make(map[geometry.Point]struct{})
	var points []geometry.Point
	add := func(p geometry.Point) {
		if _, ok := set[p]; !ok {
			set[p] = struct{}{}
			points = append(points, p)
		}
	}
	for _, c := range corners {
		add(c)
	}
	for _, e := range f.edges {
		if !e.removed {
			add(e.va)
			add(e.vb)
		}
	}

	priority := func(p geometry.Point) int {
		switch {
		case bbox.rect.IsCorner(p):
			return weldCorner
		case bbox.rect.OnBoundary(p):
			return weldSide
		}
		return weldInterior
	}
	sort.SliceStable(points, func(i, j int) bool {
		pi, pj := priority(points[i]), priority(points[j])
		if pi != pj {
			return pi < pj
		}
		return geometry.CompareExact(points[i], points[j]) < 0
	})

	coords := make([]model2d.Coord, len(points))
	for i, p := range points {
		coords[i] = model2d.Coord{X: p.X, Y: p.Y}
	}
	tree := model2d.NewCoordTree(coords)

	mapping := make(map[geometry.Point]geometry.Point, len(points))
	for i, p := range points {
		if _, ok := mapping[p]; ok {
			continue
		}
		mapping[p] = p
		for _, n := range neighborsInDistance(tree, coords[i], eps) {
			q := geometry.Pt(n.X, n.Y)
			if _, ok := mapping[q]; !ok {
				mapping[q] = p
				merged++
			}
		}
	}

	for _, e := range f.edges {
		if e.removed {
			continue
		}
		e.va = mapping[e.va]
		e.vb = mapping[e.vb]
		if e.va == e.vb {
			e.removed = true
			collapsed++
		}
	}
	return merged, collapsed
}

// neighborsInDistance возвращает все точки дерева не дальше epsilon от c,
// включая саму c.
func neighborsInDistance(tree *model2d.CoordTree, c model2d.Coord, epsilon float64) []model2d.Coord {
	for k := 2; ; k++ {
		neighbors := tree.KNN(k, c)
		if len(neighbors) < k {
			return neighbors
		}
		if neighbors[len(neighbors)-1].Dist(c) > epsilon {
			return neighbors[:len(neighbors)-1]
		}
	}
}
