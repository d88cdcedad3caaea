package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareExact(t *testing.T) {
	assert.Equal(t, -1, CompareExact(Pt(5, 1), Pt(0, 2)), "Y decides first")
	assert.Equal(t, 1, CompareExact(Pt(0, 3), Pt(5, 2)))
	assert.Equal(t, -1, CompareExact(Pt(1, 2), Pt(3, 2)), "X breaks ties")
	assert.Equal(t, 0, CompareExact(Pt(1, 2), Pt(1, 2)))
	assert.Equal(t, 0, CompareExact(Pt(math.Copysign(0, -1), 0), Pt(0, 0)))
}

func TestSortPoints(t *testing.T) {
	points := []Point{Pt(3, 1), Pt(0, 0), Pt(-1, 1), Pt(2, 0)}
	SortPoints(points)
	want := []Point{Pt(0, 0), Pt(2, 0), Pt(-1, 1), Pt(3, 1)}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("SortPoints mismatch (-want +got):\n%s", diff)
	}
}

func TestOrientation(t *testing.T) {
	assert.Equal(t, 1, Orientation(Pt(0, 0), Pt(1, 0), Pt(0, 1)))
	assert.Equal(t, -1, Orientation(Pt(0, 0), Pt(0, 1), Pt(1, 0)))
	assert.Equal(t, 0, Orientation(Pt(0, 0), Pt(1, 1), Pt(2, 2)))
	assert.Equal(t, 0, Orientation(Pt(1, 1), Pt(1, 1), Pt(3, 7)))
}

func TestOrientationNearlyCollinear(t *testing.T) {
	// a, b, c точно на прямой y = x
	a := Pt(0.5, 0.5)
	b := Pt(12, 12)
	c := Pt(24, 24)
	require.Equal(t, 0, Orientation(a, b, c))

	// сдвиг на один ulp должен давать согласованные знаки при любой перестановке
	for i := 0; i < 64; i++ {
		p := Pt(math.Nextafter(0.5, 1)+float64(i)*0x1p-53, 0.5)
		o := Orientation(p, b, c)
		assert.Equal(t, o, Orientation(b, c, p), "cyclic permutation")
		assert.Equal(t, o, Orientation(c, p, b), "cyclic permutation")
		assert.Equal(t, -o, Orientation(b, p, c), "swap")
		assert.Equal(t, -1, o, "point below y=x is clockwise from b→c")
	}
}

func TestOrientationExactFallback(t *testing.T) {
	// окрестность (0.5, 0.5), где быстрый путь часто неточен
	b := Pt(12, 12)
	c := Pt(24, 24)
	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			p := Pt(0.5+float64(i)*0x1p-53, 0.5+float64(j)*0x1p-53)
			want := exactOrientation(p, b, c)
			assert.Equal(t, want, Orientation(p, b, c), "i=%d j=%d", i, j)
		}
	}
}

func TestOrientationNonFinite(t *testing.T) {
	assert.Equal(t, 0, Orientation(Pt(math.NaN(), 0), Pt(1, 0), Pt(0, 1)))
	assert.Equal(t, 0, exactOrientation(Pt(math.Inf(1), 0), Pt(1, 0), Pt(0, 1)))
}

func TestCompareDistance(t *testing.T) {
	assert.Equal(t, -1, CompareDistance(Pt(0, 0), Pt(1, 0), Pt(0, 2)))
	assert.Equal(t, 1, CompareDistance(Pt(0, 0), Pt(3, 0), Pt(0, 2)))
	assert.Equal(t, 0, CompareDistance(Pt(0, 0), Pt(3, 4), Pt(-5, 0)))

	// расстояния совпадают во float64, точный путь различает их
	corner := Pt(-10, 10)
	near := Pt(1e-7, 1e-7)
	require.Equal(t, corner.SquaredDistance(Pt(0, 0)), 200.0)
	assert.Equal(t, -1, CompareDistance(corner, Pt(0, 0), near))
	assert.Equal(t, 1, CompareDistance(corner, near, Pt(0, 0)))

	assert.Equal(t, 0, CompareDistance(Pt(math.NaN(), 0), Pt(1, 0), Pt(0, 1)))
}

func TestCompareAngle(t *testing.T) {
	o := Pt(0, 0)
	ordered := []Point{
		Pt(1, 0), Pt(1, 1), Pt(0, 1), Pt(-1, 1), Pt(-1, 0), Pt(-1, -1), Pt(0, -1), Pt(1, -1),
	}
	for i := range ordered {
		for j := range ordered {
			got := CompareAngle(o, ordered[i], ordered[j])
			switch {
			case i < j:
				assert.Less(t, got, 0, "%v before %v", ordered[i], ordered[j])
			case i > j:
				assert.Greater(t, got, 0, "%v after %v", ordered[i], ordered[j])
			default:
				assert.Zero(t, got)
			}
		}
	}
	assert.Less(t, CompareAngle(o, Pt(1, 1), Pt(2, 2)), 0, "same direction, shorter first")
}

func TestSortCounterClockwise(t *testing.T) {
	points := []Point{Pt(1, 1), Pt(-1, -1), Pt(1, -1), Pt(-1, 1)}
	SortCounterClockwise(points, VertexCentroid(points))
	want := []Point{Pt(1, 1), Pt(-1, 1), Pt(-1, -1), Pt(1, -1)}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("SortCounterClockwise mismatch (-want +got):\n%s", diff)
	}
	assert.Greater(t, PolygonArea(points), 0.0)
}

func TestLineCanonical(t *testing.T) {
	l := NewLine(3, 5, 1, 2)
	assert.Equal(t, NewLine(1, 2, 3, 5), l.Canonical())
	assert.Equal(t, NewLine(1, 2, 3, 5), l.Canonical().Canonical())
	assert.Equal(t, NewLine(0, 1, 4, 1), NewLine(4, 1, 0, 1).Canonical(), "X decides on equal Y")
	assert.Equal(t, l, l.Reverse().Reverse())
	assert.InDelta(t, math.Sqrt(13), l.Length(), 1e-12)
	assert.True(t, NewLine(1, 1, 1, 1).IsDegenerate())
}

func TestLineIntersect(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Line
		rel   LineRelation
		point Point
	}{
		{"crossing", NewLine(0, 0, 2, 2), NewLine(0, 2, 2, 0), Crossing, Pt(1, 1)},
		{"disjoint", NewLine(0, 0, 1, 0), NewLine(0, 1, 1, 1), Disjoint, Point{}},
		{"touching end", NewLine(0, 0, 1, 1), NewLine(1, 1, 2, 0), Touching, Pt(1, 1)},
		{"t-junction", NewLine(0, 0, 2, 0), NewLine(1, 0, 1, 5), Touching, Pt(1, 0)},
		{"overlapping", NewLine(0, 0, 2, 0), NewLine(1, 0, 3, 0), Overlapping, Point{}},
		{"collinear touching", NewLine(0, 0, 1, 0), NewLine(1, 0, 3, 0), Touching, Pt(1, 0)},
		{"collinear disjoint", NewLine(0, 0, 1, 0), NewLine(2, 0, 3, 0), Disjoint, Point{}},
		{"skew apart", NewLine(0, 0, 1, 1), NewLine(3, 0, 2, 1), Disjoint, Point{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Intersect(tc.b)
			assert.Equal(t, tc.rel, got.Relation)
			if tc.rel == Crossing || tc.rel == Touching {
				assert.InDelta(t, tc.point.X, got.Point.X, 1e-12)
				assert.InDelta(t, tc.point.Y, got.Point.Y, 1e-12)
			}
			assert.Equal(t, tc.rel, tc.b.Intersect(tc.a).Relation, "symmetric")
		})
	}
}

func TestLineContains(t *testing.T) {
	l := NewLine(0, 0, 4, 2)
	assert.True(t, l.Contains(Pt(2, 1)))
	assert.True(t, l.Contains(Pt(4, 2)))
	assert.False(t, l.Contains(Pt(6, 3)))
	assert.False(t, l.Contains(Pt(2, 1.0000001)))
}

func TestRect(t *testing.T) {
	r := NewRect(-10, -5, 10, 5)
	require.True(t, r.IsValid())
	assert.Equal(t, 20.0, r.Width())
	assert.Equal(t, 10.0, r.Height())
	assert.Equal(t, Pt(0, 0), r.Center())
	assert.Equal(t, [4]Point{Pt(-10, -5), Pt(10, -5), Pt(10, 5), Pt(-10, 5)}, r.Corners())
	assert.True(t, r.Contains(Pt(10, 5)))
	assert.False(t, r.Contains(Pt(10.5, 0)))
	assert.Equal(t, Pt(10, -5), r.Clamp(Pt(12, -9)))
	assert.True(t, r.OnBoundary(Pt(3, 5)))
	assert.False(t, r.OnBoundary(Pt(3, 4)))
	assert.True(t, r.IsCorner(Pt(-10, 5)))
	assert.False(t, r.IsCorner(Pt(-10, 4)))

	assert.False(t, NewRect(0, 0, 0, 1).IsValid())
	assert.False(t, NewRect(0, 0, -1, 1).IsValid())
	assert.False(t, NewRect(0, 0, math.Inf(1), 1).IsValid())
	assert.False(t, NewRect(math.NaN(), 0, 1, 1).IsValid())
	assert.Equal(t, NewRect(-1, -2, 3, 4), RectFromPoints(Pt(3, -2), Pt(-1, 4)))
	assert.Equal(t, NewRect(-1, -2, 10, 4), NewRect(-1, -2, 3, 4).AddPoint(Pt(10, 0)))
}

func TestLocatePoint(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	tests := []struct {
		name string
		q    Point
		want PolygonLocation
	}{
		{"inside", Pt(1, 2), Inside},
		{"outside", Pt(5, 2), Outside},
		{"outside level with vertex", Pt(-1, 0), Outside},
		{"outside level with top", Pt(-1, 4), Outside},
		{"on vertex", Pt(4, 4), OnVertex},
		{"on edge", Pt(2, 0), OnEdge},
		{"on vertical edge", Pt(0, 3), OnEdge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LocatePoint(tc.q, square))
			reversed := []Point{square[3], square[2], square[1], square[0]}
			assert.Equal(t, tc.want, LocatePoint(tc.q, reversed), "orientation independent")
		})
	}

	concave := []Point{Pt(0, 0), Pt(6, 0), Pt(6, 6), Pt(3, 2), Pt(0, 6)}
	assert.Equal(t, Outside, LocatePoint(Pt(3, 4), concave))
	assert.Equal(t, Inside, LocatePoint(Pt(3, 1), concave))
	assert.Equal(t, Inside, LocatePoint(Pt(1, 2), concave), "ray passes through reflex vertex height")
	assert.Equal(t, Outside, LocatePoint(Pt(1, 1), nil))
}

func TestPolygonArea(t *testing.T) {
	triangle := []Point{Pt(0, 0), Pt(4, 0), Pt(0, 3)}
	assert.Equal(t, 6.0, PolygonArea(triangle))
	assert.Equal(t, -6.0, PolygonArea([]Point{triangle[2], triangle[1], triangle[0]}))
}

func TestIsSimplePolygon(t *testing.T) {
	assert.True(t, IsSimplePolygon([]Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}))
	assert.False(t, IsSimplePolygon([]Point{Pt(0, 0), Pt(4, 4), Pt(4, 0), Pt(0, 4)}), "bow tie")
	assert.False(t, IsSimplePolygon([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}), "collinear")
	assert.False(t, IsSimplePolygon([]Point{Pt(0, 0), Pt(1, 0)}))
	assert.False(t, IsSimplePolygon([]Point{Pt(0, 0), Pt(4, 0), Pt(0, 0), Pt(0, 4)}), "repeated vertex")
	assert.True(t, IsSimplePolygon([]Point{Pt(0, 0), Pt(2, 0), Pt(4, 0), Pt(2, 3)}), "collinear run")
}

func TestEquivalentPoints(t *testing.T) {
	assert.True(t, EquivalentPoints([]Point{Pt(1, 2), Pt(3, 4)}, []Point{Pt(3, 4), Pt(1, 2)}))
	assert.True(t, EquivalentPoints([]Point{Pt(1, 2), Pt(1, 2)}, []Point{Pt(1, 2)}))
	assert.False(t, EquivalentPoints([]Point{Pt(1, 2)}, []Point{Pt(1, 2), Pt(3, 4)}))
	assert.False(t, EquivalentPoints([]Point{Pt(1, 2), Pt(3, 4)}, []Point{Pt(1, 2)}))
}

func TestRandomPoints(t *testing.T) {
	bounds := NewRect(-1000, -1000, 1000, 1000)
	a := RandomPoints(rand.New(rand.NewSource(7)), 50, bounds)
	b := RandomPoints(rand.New(rand.NewSource(7)), 50, bounds)
	require.Len(t, a, 50)
	assert.Equal(t, a, b, "same seed, same points")
	for _, p := range a {
		assert.True(t, bounds.Contains(p), "%v", p)
	}
}
