package voronoi

import (
	"sort"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
	"github.com/unixpickle/essentials"
)

// cell - ячейка одного различного сайта. Совпадающие сайты делят ячейку
// с первым индексом.
type cell struct {
	site geometry.Point
	// наименьший индекс во входных данных с такими координатами
	index     int
	halfEdges []*halfEdge
	region    []geometry.Point
}

func newCell(site geometry.Point, index int) *cell {
	return &cell{site: site, index: index}
}

// prepare убирает полуребра удаленных ребер и сортирует оставшиеся
// против часовой стрелки по направлению на соседа.
func (c *cell) prepare() int {
	for i := len(c.halfEdges) - 1; i >= 0; i-- {
		if c.halfEdges[i].edge.removed {
			essentials.UnorderedDelete(&c.halfEdges, i)
		}
	}
	sort.Slice(c.halfEdges, func(i, j int) bool {
		return c.halfEdges[i].angle < c.halfEdges[j].angle
	})
	return len(c.halfEdges)
}
