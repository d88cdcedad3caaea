package voronoi

import (
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
)

// beachSection - дуга параболы сайта на пляжной линии.
type beachSection struct {
	node        *rbNode[*beachSection]
	site        geometry.Point
	circleEvent *circleEvent
	edge        *edge
}

// circleEvent - момент исчезновения дуги arc: три соседние параболы
// сходятся в центре окружности (x, ycenter), событие наступает при y.
type circleEvent struct {
	node    *rbNode[*circleEvent]
	site    geometry.Point
	arc     *beachSection
	x       float64
	y       float64
	ycenter float64
}

// leftBreakPoint - X пересечения параболы arc с параболой левого соседа
// при положении линии сканирования directrix.
func leftBreakPoint(arc *beachSection, directrix float64) float64 {
	site := arc.site
	rfocx := site.X
	rfocy := site.Y
	pby2 := rfocy - directrix
	// парабола вырождена в вертикальный луч
	if pby2 == 0 {
		return rfocx
	}

	lArc := arc.node.previous
	if lArc == nil {
		return math.Inf(-1)
	}
	site = lArc.value.site
	lfocx := site.X
	lfocy := site.Y
	plby2 := lfocy - directrix
	if plby2 == 0 {
		return lfocx
	}
	hl := lfocx - rfocx
	aby2 := 1/pby2 - 1/plby2
	b := hl / plby2
	if aby2 != 0 {
		return (-b+math.Sqrt(b*b-2*aby2*(hl*hl/(-2*plby2)-lfocy+plby2/2+rfocy-pby2/2)))/aby2 + rfocx
	}
	// обе параболы одинаковые, точка пересечения посередине
	return (rfocx + lfocx) / 2
}

func rightBreakPoint(arc *beachSection, directrix float64) float64 {
	if rArc := arc.node.next; rArc != nil {
		return leftBreakPoint(rArc.value, directrix)
	}
	if arc.site.Y == directrix {
		return arc.site.X
	}
	return math.Inf(1)
}
