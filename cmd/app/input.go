package main

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
	"github.com/pkg/errors"
)

// clipValue разбирает флаг --clip в формате minX,minY,maxX,maxY.
type clipValue struct {
	rect geometry.Rect
}

func newClipValue(def geometry.Rect) *clipValue {
	return &clipValue{rect: def}
}

func (c *clipValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return errors.Errorf("clip %q: want minX,minY,maxX,maxY", s)
	}
	var v [4]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return errors.Wrapf(err, "clip %q", s)
		}
		v[i] = f
	}
	c.rect = geometry.NewRect(v[0], v[1], v[2], v[3])
	return nil
}

func (c *clipValue) String() string {
	return c.rect.String()
}

// readSites читает по сайту "x y" на строку. Пустые строки и строки,
// начинающиеся с #, пропускаются.
func readSites(r io.Reader) ([]geometry.Point, error) {
	var sites []geometry.Point
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: want \"x y\", got %q", line, text)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		sites = append(sites, geometry.Pt(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read sites")
	}
	return sites, nil
}

// gridSites раскладывает n сайтов по центрам ячеек сетки rows x cols внутри bounds.
func gridSites(n int, bounds geometry.Rect) []geometry.Point {
	sites := make([]geometry.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := bounds.Width() / float64(cols)
	yStep := bounds.Height() / float64(rows)

	for i := 0; i < rows && len(sites) < n; i++ {
		for j := 0; j < cols && len(sites) < n; j++ {
			x := bounds.MinX() + xStep/2 + float64(j)*xStep
			y := bounds.MinY() + yStep/2 + float64(i)*yStep
			sites = append(sites, geometry.Pt(x, y))
		}
	}
	return sites
}
