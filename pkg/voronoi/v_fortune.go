package voronoi

import (
	"fmt"
	"math"
	"sort"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// fortune - состояние алгоритма Форчуна.
type fortune struct {
	// ячейки различных сайтов в порядке обработки
	cells []*cell
	// все ребра, включая еще не отсеченные лучи
	edges []*edge

	// мапа для быстрого доступа к ячейке по координатам сайта
	cellsMap map[geometry.Point]*cell

	// пляжная линия, упорядочена по X
	beachline rbTree[*beachSection]
	// события круга, упорядочены по (y, x)
	circleEvents rbTree[*circleEvent]
	// ближайшее событие круга
	firstCircleEvent *circleEvent

	// допуски линии сканирования, пропорциональные размеру входа
	eps       float64
	circleEps float64

	log *logger.ZapLogger
}

// доли размера входа: при размере 1000 совпадают с допусками Хилла 1e-9 и 2e-12
const (
	sweepEpsilon  = 1e-12
	circleEpsilon = 2e-18
)

type indexedSite struct {
	point geometry.Point
	index int
}

// newFortune создает состояние для входа размера extent (наибольшая сторона
// прямоугольника, охватывающего сайты и область отсечения).
func newFortune(log *logger.ZapLogger, extent float64) *fortune {
	return &fortune{
		cellsMap:  make(map[geometry.Point]*cell),
		eps:       sweepEpsilon * extent,
		circleEps: circleEpsilon * extent * extent,
		log:       log,
	}
}

// sweep обрабатывает сайты снизу вверх (по возрастанию Y, затем X).
// Совпадающие сайты обрабатываются один раз, ячейка получает наименьший индекс.
func (f *fortune) sweep(sites []geometry.Point) {
	queue := make([]indexedSite, len(sites))
	for i, p := range sites {
		queue[i] = indexedSite{point: p, index: i}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return geometry.CompareExact(queue[i].point, queue[j].point) < 0
	})

	f.log.Debug("[f] Алгоритм Форчуна запущен", zap.Int("sites", len(queue)))

	pos := 0
	var prev *indexedSite
	var siteEvents, circleEvents, duplicates int
	for {
		// site event - линия сканирования пересекает сайт,
		// circle event - дуга сжимается в точку и появляется вершина.
		// Обрабатываем то, что наступает раньше
		circle := f.firstCircleEvent

		var site *indexedSite
		if pos < len(queue) {
			site = &queue[pos]
		}

		if site != nil && (circle == nil || site.point.Y < circle.y || (site.point.Y == circle.y && site.point.X < circle.x)) {
			if prev == nil || site.point != prev.point {
				c := newCell(site.point, site.index)
				f.cells = append(f.cells, c)
				f.cellsMap[site.point] = c
				f.addBeachSection(site.point)
				prev = site
				siteEvents++
			} else {
				f.log.Debug("[f-site] Найден дубликат", zap.Int("index", site.index), zap.Int("first", prev.index))
				duplicates++
			}
			pos++
		} else if circle != nil {
			f.removeBeachSection(circle.arc)
			circleEvents++
		} else {
			break
		}
	}

	f.log.Debug("[f] Алгоритм завершен",
		zap.Int("site-events", siteEvents),
		zap.Int("circle-events", circleEvents),
		zap.Int("duplicates", duplicates),
		zap.Int("edges", len(f.edges)),
	)
}

func (f *fortune) cell(site geometry.Point) *cell {
	c := f.cellsMap[site]
	if c == nil {
		panic(fmt.Sprintf("voronoi: no cell for site %v", site))
	}
	return c
}

func (f *fortune) createEdge(left, right *cell, va, vb geometry.Point) *edge {
	e := newEdge(left, right)
	f.edges = append(f.edges, e)
	if va != noVertex {
		setEdgeStartpoint(e, left, right, va)
	}
	if vb != noVertex {
		setEdgeEndpoint(e, left, right, vb)
	}
	left.halfEdges = append(left.halfEdges, newHalfEdge(e, left, right))
	right.halfEdges = append(right.halfEdges, newHalfEdge(e, right, left))
	return e
}

// setEdgeStartpoint: первый заданный конец всегда va, ячейки при этом
// переставляются так, чтобы left была слева от направления va→vb.
func setEdgeStartpoint(e *edge, left, right *cell, v geometry.Point) {
	if e.va == noVertex && e.vb == noVertex {
		e.va = v
		e.left = left
		e.right = right
	} else if e.left == right {
		e.vb = v
	} else {
		e.va = v
	}
}

func setEdgeEndpoint(e *edge, left, right *cell, v geometry.Point) {
	setEdgeStartpoint(e, right, left, v)
}

func (f *fortune) detachBeachSection(arc *beachSection) {
	f.detachCircleEvent(arc)
	f.beachline.removeNode(arc.node)
}

// removeBeachSection обрабатывает событие круга: исчезающая дуга и все
// соседние дуги с тем же центром окружности схлопываются в одну вершину.
func (f *fortune) removeBeachSection(bs *beachSection) {
	circle := bs.circleEvent
	x := circle.x
	y := circle.ycenter
	vertex := geometry.Pt(x, y)
	previous := bs.node.previous
	next := bs.node.next
	disappearing := []*beachSection{bs}

	f.detachBeachSection(bs)

	lArc := previous.value
	for lArc.circleEvent != nil &&
		math.Abs(x-lArc.circleEvent.x) < f.eps &&
		math.Abs(y-lArc.circleEvent.ycenter) < f.eps {
		previous = lArc.node.previous
		disappearing = append([]*beachSection{lArc}, disappearing...)
		f.detachBeachSection(lArc)
		lArc = previous.value
	}
	// крайняя левая дуга остается, но ее событие круга больше не актуально
	disappearing = append([]*beachSection{lArc}, disappearing...)
	f.detachCircleEvent(lArc)

	rArc := next.value
	for rArc.circleEvent != nil &&
		math.Abs(x-rArc.circleEvent.x) < f.eps &&
		math.Abs(y-rArc.circleEvent.ycenter) < f.eps {
		next = rArc.node.next
		disappearing = append(disappearing, rArc)
		f.detachBeachSection(rArc)
		rArc = next.value
	}
	disappearing = append(disappearing, rArc)
	f.detachCircleEvent(rArc)

	// все переходы между соседними исчезающими дугами заканчиваются в вершине
	n := len(disappearing)
	for i := 1; i < n; i++ {
		rArc = disappearing[i]
		lArc = disappearing[i-1]
		setEdgeStartpoint(rArc.edge, f.cell(lArc.site), f.cell(rArc.site), vertex)
	}

	// новое ребро между крайними дугами начинается в вершине
	lArc = disappearing[0]
	rArc = disappearing[n-1]
	rArc.edge = f.createEdge(f.cell(lArc.site), f.cell(rArc.site), noVertex, vertex)

	f.attachCircleEvent(lArc)
	f.attachCircleEvent(rArc)
}

// addBeachSection обрабатывает событие сайта.
func (f *fortune) addBeachSection(site geometry.Point) {
	x := site.X
	directrix := site.Y

	// ищем дуги слева и справа от нового сайта
	var lNode, rNode *rbNode[*beachSection]
	node := f.beachline.root
	for node != nil {
		dxl := leftBreakPoint(node.value, directrix) - x
		if dxl > f.eps {
			node = node.left
			continue
		}
		dxr := x - rightBreakPoint(node.value, directrix)
		if dxr > f.eps {
			if node.right == nil {
				lNode = node
				break
			}
			node = node.right
			continue
		}
		switch {
		// сайт попал на левую точку излома
		case dxl > -f.eps:
			lNode = node.previous
			rNode = node
		// на правую
		case dxr > -f.eps:
			lNode = node
			rNode = node.next
		// строго внутрь дуги
		default:
			lNode = node
			rNode = node
		}
		break
	}

	var lArc, rArc *beachSection
	if lNode != nil {
		lArc = lNode.value
	}
	if rNode != nil {
		rArc = rNode.value
	}

	newArc := &beachSection{site: site}
	if lArc == nil {
		newArc.node = f.beachline.insertSuccessor(nil, newArc)
	} else {
		newArc.node = f.beachline.insertSuccessor(lArc.node, newArc)
	}

	// первая дуга
	if lArc == nil && rArc == nil {
		return
	}

	// новая дуга делит существующую на две
	if lArc == rArc {
		f.detachCircleEvent(lArc)

		rArc = &beachSection{site: lArc.site}
		rArc.node = f.beachline.insertSuccessor(newArc.node, rArc)

		newArc.edge = f.createEdge(f.cell(lArc.site), f.cell(newArc.site), noVertex, noVertex)
		rArc.edge = newArc.edge

		f.attachCircleEvent(lArc)
		f.attachCircleEvent(rArc)
		return
	}

	// новая дуга справа от всех (сайты на одной горизонтали)
	if lArc != nil && rArc == nil {
		newArc.edge = f.createEdge(f.cell(lArc.site), f.cell(newArc.site), noVertex, noVertex)
		return
	}

	// новая дуга ровно между двумя дугами: появляется вершина
	f.detachCircleEvent(lArc)
	f.detachCircleEvent(rArc)

	lSite := lArc.site
	ax := lSite.X
	ay := lSite.Y
	bx := site.X - ax
	by := site.Y - ay
	rSite := rArc.site
	cx := rSite.X - ax
	cy := rSite.Y - ay
	d := 2 * (bx*cy - by*cx)
	hb := bx*bx + by*by
	hc := cx*cx + cy*cy
	vertex := geometry.Pt((cy*hb-by*hc)/d+ax, (bx*hc-cx*hb)/d+ay)

	lCell := f.cell(lSite)
	newCell := f.cell(site)
	rCell := f.cell(rSite)

	setEdgeStartpoint(rArc.edge, lCell, rCell, vertex)

	newArc.edge = f.createEdge(lCell, newCell, noVertex, vertex)
	rArc.edge = f.createEdge(newCell, rCell, noVertex, vertex)

	f.attachCircleEvent(lArc)
	f.attachCircleEvent(rArc)
}

func (f *fortune) attachCircleEvent(arc *beachSection) {
	lArc := arc.node.previous
	rArc := arc.node.next
	if lArc == nil || rArc == nil {
		return
	}
	lSite := lArc.value.site
	cSite := arc.site
	rSite := rArc.value.site

	// одинаковые соседи: дуга не может схлопнуться
	if lSite == rSite {
		return
	}

	bx := cSite.X
	by := cSite.Y
	ax := lSite.X - bx
	ay := lSite.Y - by
	cx := rSite.X - bx
	cy := rSite.Y - by

	// точки идут по часовой стрелке, иначе точки излома расходятся
	d := 2 * (ax*cy - ay*cx)
	if d >= -f.circleEps {
		return
	}

	ha := ax*ax + ay*ay
	hc := cx*cx + cy*cy
	x := (cy*ha - ay*hc) / d
	y := (ax*hc - cx*ha) / d
	ycenter := y + by

	event := &circleEvent{
		arc:     arc,
		site:    cSite,
		x:       x + bx,
		y:       ycenter + math.Sqrt(x*x+y*y),
		ycenter: ycenter,
	}
	arc.circleEvent = event

	// позиция в дереве событий
	var predecessor *rbNode[*circleEvent]
	node := f.circleEvents.root
	for node != nil {
		if event.y < node.value.y || (event.y == node.value.y && event.x <= node.value.x) {
			if node.left == nil {
				predecessor = node.previous
				break
			}
			node = node.left
		} else {
			if node.right == nil {
				predecessor = node
				break
			}
			node = node.right
		}
	}
	event.node = f.circleEvents.insertSuccessor(predecessor, event)
	if predecessor == nil {
		f.firstCircleEvent = event
	}
}

func (f *fortune) detachCircleEvent(arc *beachSection) {
	circle := arc.circleEvent
	if circle == nil {
		return
	}
	if circle.node.previous == nil {
		if circle.node.next != nil {
			f.firstCircleEvent = circle.node.next.value
		} else {
			f.firstCircleEvent = nil
		}
	}
	f.circleEvents.removeNode(circle.node)
	arc.circleEvent = nil
}
