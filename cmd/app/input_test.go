package main

import (
	"strings"
	"testing"

	"github.com/0x0FACED/go-voronoi/pkg/geometry"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSites(t *testing.T) {
	input := "# sites\n1 2\n\n  -3.5\t4\n5,6\n"
	sites, err := readSites(strings.NewReader(input))
	require.NoError(t, err)
	want := []geometry.Point{geometry.Pt(1, 2), geometry.Pt(-3.5, 4), geometry.Pt(5, 6)}
	assert.Empty(t, cmp.Diff(want, sites))

	_, err = readSites(strings.NewReader("1 2\n3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = readSites(strings.NewReader("1 x\n"))
	require.Error(t, err)
}

func TestClipValue(t *testing.T) {
	c := newClipValue(geometry.NewRect(0, 0, 1, 1))
	require.NoError(t, c.Set("-10, -5,10,5"))
	assert.Equal(t, geometry.NewRect(-10, -5, 10, 5), c.rect)

	assert.Error(t, c.Set("1,2,3"))
	assert.Error(t, c.Set("1,2,3,z"))
}

func TestGridSites(t *testing.T) {
	bounds := geometry.NewRect(0, 0, 100, 100)
	sites := gridSites(7, bounds)
	require.Len(t, sites, 7)
	// 2 строки по 4 столбца
	assert.Equal(t, geometry.Pt(12.5, 25), sites[0])
	assert.Equal(t, geometry.Pt(62.5, 75), sites[6])
	for _, p := range sites {
		assert.True(t, bounds.Contains(p))
	}
}
