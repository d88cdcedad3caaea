package voronoi

import (
	"github.com/0x0FACED/go-voronoi/pkg/geometry"
	"github.com/0x0FACED/go-voronoi/pkg/subdivision"
	"github.com/pkg/errors"
)

// Edge - отсеченное ребро диаграммы Вороного между двумя сайтами.
type Edge struct {
	Line geometry.Line
	// индексы сайтов, Sites[0] < Sites[1]
	Sites [2]int
}

// Results - неизменяемый результат FindAll. Все срезы выровнены по индексам
// входных сайтов; методы возвращают копии.
type Results struct {
	clip      geometry.Rect
	sites     []geometry.Point
	regions   [][]geometry.Point
	delaunay  []geometry.Line
	edges     []Edge
	neighbors [][]int
	// индекс первого сайта с теми же координатами
	canonical []int
}

func newResults(sites []geometry.Point, clip geometry.Rect, f *fortune) *Results {
	res := &Results{
		clip:      clip,
		sites:     append([]geometry.Point(nil), sites...),
		regions:   make([][]geometry.Point, len(sites)),
		neighbors: make([][]int, len(sites)),
		canonical: make([]int, len(sites)),
	}
	for i, p := range sites {
		c := f.cell(p)
		res.canonical[i] = c.index
		// дубликаты получают пустой регион
		if c.index == i {
			res.regions[i] = c.region
			res.neighbors[i] = c.neighbors()
		}
	}
	res.delaunay, res.edges = f.delaunayEdges()
	return res
}

func (r *Results) Len() int { return len(r.sites) }

func (r *Results) ClippingBounds() geometry.Rect { return r.clip }

// GeneratorSites - сайты в порядке входа.
func (r *Results) GeneratorSites() []geometry.Point {
	return append([]geometry.Point(nil), r.sites...)
}

// VoronoiRegions - по одному многоугольнику (против часовой стрелки) на сайт.
// Пустой регион - nil.
func (r *Results) VoronoiRegions() [][]geometry.Point {
	regions := make([][]geometry.Point, len(r.regions))
	for i, region := range r.regions {
		regions[i] = append([]geometry.Point(nil), region...)
	}
	return regions
}

// DelaunayEdges - ребра Делоне, направленные канонически и отсортированные.
func (r *Results) DelaunayEdges() []geometry.Line {
	return append([]geometry.Line(nil), r.delaunay...)
}

// VoronoiEdges - уцелевшие после отсечения ребра диаграммы Вороного.
func (r *Results) VoronoiEdges() []Edge {
	return append([]Edge(nil), r.edges...)
}

func (r *Results) Site(i int) (geometry.Point, error) {
	if err := r.checkIndex(i); err != nil {
		return geometry.Point{}, err
	}
	return r.sites[i], nil
}

func (r *Results) Region(i int) ([]geometry.Point, error) {
	if err := r.checkIndex(i); err != nil {
		return nil, err
	}
	return append([]geometry.Point(nil), r.regions[i]...), nil
}

// Neighbors - соседи сайта i по Делоне против часовой стрелки.
func (r *Results) Neighbors(i int) ([]int, error) {
	if err := r.checkIndex(i); err != nil {
		return nil, err
	}
	return append([]int(nil), r.neighbors[i]...), nil
}

// Canonical - наименьший индекс сайта с теми же координатами, что у i.
func (r *Results) Canonical(i int) (int, error) {
	if err := r.checkIndex(i); err != nil {
		return 0, err
	}
	return r.canonical[i], nil
}

func (r *Results) checkIndex(i int) error {
	if i < 0 || i >= len(r.sites) {
		return errors.Wrapf(ErrIndexOutOfRange, "site %d of %d", i, len(r.sites))
	}
	return nil
}

// ToDelaunaySubdivision строит разбиение из ребер Делоне. С validate
// возвращает ошибку проверки вместо разбиения.
func (r *Results) ToDelaunaySubdivision(validate bool) (*subdivision.Subdivision, error) {
	s, err := subdivision.Construct(r.delaunay)
	if err != nil {
		return nil, errors.Wrap(err, "delaunay subdivision")
	}
	if validate {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return s, nil
}
