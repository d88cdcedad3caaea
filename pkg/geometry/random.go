package geometry

import "math/rand"

// RandomPoint возвращает равномерно распределенную точку внутри bounds.
func RandomPoint(rng *rand.Rand, bounds Rect) Point {
	return Pt(
		bounds.MinX()+rng.Float64()*bounds.Width(),
		bounds.MinY()+rng.Float64()*bounds.Height(),
	)
}

// RandomPoints генерирует n точек из переданного источника.
func RandomPoints(rng *rand.Rand, n int, bounds Rect) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = RandomPoint(rng, bounds)
	}
	return points
}
