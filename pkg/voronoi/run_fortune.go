package voronoi

import (
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FindAll строит диаграмму Вороного сайтов, отсеченную прямоугольником clip,
// и двойственные ей ребра Делоне.
//
// Сайты могут совпадать и лежать вне clip. Пустой набор сайтов, неконечные
// координаты или clip с неположительной шириной или высотой дают
// ErrInvalidInput.
func FindAll(sites []geometry.Point, clip geometry.Rect, opts ...Option) (*Results, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger

	if len(sites) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no sites")
	}
	for i, p := range sites {
		if !p.IsFinite() {
			return nil, errors.Wrapf(ErrInvalidInput, "site %d %v is not finite", i, p)
		}
	}
	if !clip.IsValid() {
		return nil, errors.Wrapf(ErrInvalidInput, "clip rectangle %v has no area", clip)
	}

	f := newFortune(log, extent(sites, clip))
	f.sweep(sites)

	bbox := newBoundingBox(clip)
	removed := f.clipEdges(bbox)
	log.Debug("[f] Ребра отсечены", zap.Int("edges", len(f.edges)), zap.Int("removed", removed))

	eps := cfg.Tolerance * math.Max(clip.Width(), clip.Height())
	merged, collapsed := f.weldVertices(bbox, eps)
	log.Debug("[f] Вершины сварены",
		zap.Float64("eps", eps),
		zap.Int("merged", merged),
		zap.Int("collapsed", collapsed),
	)

	empty := f.closeCells(bbox)
	log.Debug("[f] Ячейки замкнуты", zap.Int("cells", len(f.cells)), zap.Int("empty", empty))

	res := newResults(sites, clip, f)
	log.Debug("[f] Результаты готовы",
		zap.Int("regions", len(res.regions)),
		zap.Int("delaunay-edges", len(res.delaunay)),
	)
	return res, nil
}

// extent - наибольшая сторона прямоугольника, охватывающего сайты и clip.
func extent(sites []geometry.Point, clip geometry.Rect) float64 {
	bounds := clip
	for _, p := range sites {
		bounds = bounds.AddPoint(p)
	}
	return math.Max(bounds.Width(), bounds.Height())
}
