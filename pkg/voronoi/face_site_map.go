package voronoi

import (
	"fmt"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
	"github.com/0x0FACED/go-voronoi/pkg/subdivision"
	"github.com/pkg/errors"
)

// FaceSiteMap связывает ограниченные грани разбиения диаграммы Вороного с
// индексами сайтов. Неизменяем после построения.
type FaceSiteMap struct {
	results *Results
	source  *subdivision.Subdivision
	// сайт грани, -1 для внешней
	faceToSite []int
	siteToFace []int
}

// NewFaceSiteMap строит разбиение из непустых регионов и сопоставляет каждому
// сайту единственную ограниченную грань, не оставляющую его снаружи.
// Сайты вне прямоугольника отсечения такой грани не имеют, и построение
// завершается *subdivision.ValidationError.
func NewFaceSiteMap(results *Results) (*FaceSiteMap, error) {
	var polygons [][]geometry.Point
	for _, region := range results.regions {
		if len(region) > 0 {
			polygons = append(polygons, region)
		}
	}
	source, err := subdivision.FromPolygons(polygons)
	if err != nil {
		return nil, errors.Wrap(err, "voronoi subdivision")
	}

	faces := source.Faces()
	outlines := make([][]geometry.Point, len(faces))
	for _, f := range faces[1:] {
		if outlines[f.ID()], err = f.Polygon(); err != nil {
			return nil, err
		}
	}

	m := &FaceSiteMap{
		results:    results,
		source:     source,
		faceToSite: make([]int, len(faces)),
		siteToFace: make([]int, len(results.sites)),
	}
	for i := range m.faceToSite {
		m.faceToSite[i] = -1
	}

	for site, p := range results.sites {
		if results.canonical[site] != site {
			continue
		}
		face := -1
		for id := 1; id < len(outlines); id++ {
			if geometry.LocatePoint(p, outlines[id]) == geometry.Outside {
				continue
			}
			if face != -1 {
				return nil, siteError(site, "inside faces %d and %d", face, id)
			}
			face = id
		}
		if face == -1 {
			return nil, siteError(site, "%v is not inside any face", p)
		}
		if other := m.faceToSite[face]; other != -1 {
			return nil, siteError(site, "face %d already belongs to site %d", face, other)
		}
		m.faceToSite[face] = site
		m.siteToFace[site] = face
	}

	for site := range results.sites {
		m.siteToFace[site] = m.siteToFace[results.canonical[site]]
	}
	for id := 1; id < len(m.faceToSite); id++ {
		if m.faceToSite[id] == -1 {
			return nil, &subdivision.ValidationError{
				Invariant: subdivision.InvariantFaceSite,
				Entity:    "face",
				ID:        id,
				Detail:    "no site inside",
			}
		}
	}
	return m, nil
}

func siteError(site int, format string, args ...interface{}) error {
	return &subdivision.ValidationError{
		Invariant: subdivision.InvariantFaceSite,
		Entity:    "site",
		ID:        site,
		Detail:    fmt.Sprintf(format, args...),
	}
}

// Source - разбиение, на грани которого ссылается карта.
func (m *FaceSiteMap) Source() *subdivision.Subdivision { return m.source }

func (m *FaceSiteMap) Results() *Results { return m.results }

// Len - число ограниченных граней.
func (m *FaceSiteMap) Len() int { return len(m.faceToSite) - 1 }

// FromFace возвращает индекс сайта грани. Для внешней грани и граней
// другого разбиения - ErrIndexOutOfRange.
func (m *FaceSiteMap) FromFace(face subdivision.Face) (int, error) {
	if face.Subdivision() != m.source {
		return -1, errors.Wrapf(ErrIndexOutOfRange, "%v belongs to another subdivision", face)
	}
	id := face.ID()
	if id <= 0 || id >= len(m.faceToSite) {
		return -1, errors.Wrapf(ErrIndexOutOfRange, "%v has no site", face)
	}
	return m.faceToSite[id], nil
}

// ToFace возвращает грань сайта. Совпадающие сайты делят грань.
func (m *FaceSiteMap) ToFace(site int) (subdivision.Face, error) {
	if err := m.results.checkIndex(site); err != nil {
		return subdivision.Face{}, err
	}
	return m.source.Face(m.siteToFace[site])
}
