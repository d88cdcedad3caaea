package voronoi

import (
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
)

// boundingBox - прямоугольник отсечения в терминах алгоритма:
// линия сканирования идет от yt (MinY) к yb (MaxY).
type boundingBox struct {
	xl, xr, yt, yb float64
	rect           geometry.Rect
}

func newBoundingBox(r geometry.Rect) boundingBox {
	return boundingBox{
		xl:   r.MinX(),
		xr:   r.MaxX(),
		yt:   r.MinY(),
		yb:   r.MaxY(),
		rect: r,
	}
}

// стороны для привязки концов после отсечения
type side int

const (
	sideNone side = iota
	sideLeft
	sideRight
	sideTop
	sideBottom
)

// snap ставит точку точно на сторону и убирает выход за прямоугольник
// из-за округления.
func (b boundingBox) snap(p geometry.Point, s side) geometry.Point {
	switch s {
	case sideLeft:
		p.X = b.xl
	case sideRight:
		p.X = b.xr
	case sideTop:
		p.Y = b.yt
	case sideBottom:
		p.Y = b.yb
	}
	return b.rect.Clamp(p)
}

// connectEdge достраивает незаконченное ребро (луч или прямую) до границы
// прямоугольника. false - ребро не пересекает прямоугольник.
func connectEdge(e *edge, bbox boundingBox) bool {
	vb := e.vb
	if vb != noVertex {
		return true
	}

	va := e.va
	xl := bbox.xl
	xr := bbox.xr
	yt := bbox.yt
	yb := bbox.yb
	lSite := e.left.site
	rSite := e.right.site
	lx := lSite.X
	ly := lSite.Y
	rx := rSite.X
	ry := rSite.Y
	fx := (lx + rx) / 2
	fy := (ly + ry) / 2

	// серединный перпендикуляр проходит через (fx, fy) в направлении (dy, dx);
	// вертикальность решается точным сравнением
	dx := lx - rx
	dy := ry - ly
	atY := func(y float64) geometry.Point { return geometry.Pt(fx+(y-fy)*dy/dx, y) }
	atX := func(x float64) geometry.Point { return geometry.Pt(x, fy+(x-fx)*dx/dy) }

	switch {
	case dy == 0:
		// не пересекает прямоугольник
		if fx < xl || fx >= xr {
			return false
		}
		if lx > rx {
			// вниз
			if va == noVertex {
				va = geometry.Pt(fx, yt)
			} else if va.Y >= yb {
				return false
			}
			vb = geometry.Pt(fx, yb)
		} else {
			// вверх
			if va == noVertex {
				va = geometry.Pt(fx, yb)
			} else if va.Y < yt {
				return false
			}
			vb = geometry.Pt(fx, yt)
		}

	case math.Abs(dx) > math.Abs(dy):
		// крутой наклон: пересекаем верх и низ
		if lx > rx {
			if va == noVertex {
				va = atY(yt)
			} else if va.Y >= yb {
				return false
			}
			vb = atY(yb)
		} else {
			if va == noVertex {
				va = atY(yb)
			} else if va.Y < yt {
				return false
			}
			vb = atY(yt)
		}

	default:
		// пологий наклон: пересекаем левую и правую стороны
		if ly < ry {
			if va == noVertex {
				va = atX(xl)
			} else if va.X >= xr {
				return false
			}
			vb = atX(xr)
		} else {
			if va == noVertex {
				va = atX(xr)
			} else if va.X < xl {
				return false
			}
			vb = atX(xl)
		}
	}
	e.va = va
	e.vb = vb
	return true
}

// clipEdge - отсечение Лиана-Барски. Новые концы ставятся точно на сторону,
// которая их отсекла.
func clipEdge(e *edge, bbox boundingBox) bool {
	ax := e.va.X
	ay := e.va.Y
	bx := e.vb.X
	by := e.vb.Y
	t0, t1 := 0.0, 1.0
	s0, s1 := sideNone, sideNone
	dx := bx - ax
	dy := by - ay

	// clip уточняет [t0, t1] по одной стороне: p - проекция направления на
	// внутреннюю нормаль, q - расстояние от va до стороны (>= 0 внутри).
	clip := func(p, q float64, s side) bool {
		if p == 0 {
			return q >= 0
		}
		r := -q / p
		if p < 0 {
			// выходим через сторону
			if r < t0 {
				return false
			}
			if r < t1 {
				t1, s1 = r, s
			}
		} else {
			// входим через сторону
			if r > t1 {
				return false
			}
			if r > t0 {
				t0, s0 = r, s
			}
		}
		return true
	}

	if !clip(dx, ax-bbox.xl, sideLeft) ||
		!clip(-dx, bbox.xr-ax, sideRight) ||
		!clip(dy, ay-bbox.yt, sideTop) ||
		!clip(-dy, bbox.yb-ay, sideBottom) {
		return false
	}

	va, vb := e.va, e.vb
	if t0 > 0 {
		va = geometry.Pt(ax+t0*dx, ay+t0*dy)
	}
	if t1 < 1 {
		vb = geometry.Pt(ax+t1*dx, ay+t1*dy)
	}
	e.va = bbox.snap(va, s0)
	e.vb = bbox.snap(vb, s1)
	return true
}

// clipEdges соединяет и отсекает все ребра. Ребра вне прямоугольника
// помечаются removed.
func (f *fortune) clipEdges(bbox boundingBox) int {
	removed := 0
	for _, e := range f.edges {
		if !connectEdge(e, bbox) || !clipEdge(e, bbox) {
			e.removed = true
			removed++
		}
	}
	return removed
}
