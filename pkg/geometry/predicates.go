package geometry

import (
	"math"
	"math/big"
)

const (
	// машинный эпсилон для округления к ближайшему (2^-53)
	epsilon = 0x1p-53
	// граница ошибки для orient2d (Shewchuk, "Adaptive Precision Floating-Point
	// Arithmetic and Fast Robust Geometric Predicates")
	orientErrBound = (3 + 16*epsilon) * epsilon
	// граница относительной ошибки разности квадратов расстояний
	distErrBound = 16 * epsilon
)

// Orientation возвращает +1, если a, b, c идут против часовой стрелки,
// -1 - если по часовой, и 0 для коллинеарных точек.
// Быстрый путь на float64 с оценкой погрешности, при неуверенности -
// точное вычисление через math/big.
func Orientation(a, b, c Point) int {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return sign(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return sign(det)
		}
		detSum = -detLeft - detRight
	default:
		return sign(det)
	}

	if math.Abs(det) >= orientErrBound*detSum {
		return sign(det)
	}
	return exactOrientation(a, b, c)
}

func exactOrientation(a, b, c Point) int {
	if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
		return 0
	}
	ax, ay := newBigFloat(a.X), newBigFloat(a.Y)
	bx, by := newBigFloat(b.X), newBigFloat(b.Y)
	cx, cy := newBigFloat(c.X), newBigFloat(c.Y)

	left := bigMul(bigSub(ax, cx), bigSub(by, cy))
	right := bigMul(bigSub(ay, cy), bigSub(bx, cx))
	return left.Cmp(right)
}

// newBigFloat возвращает big.Float с максимальной точностью, так что
// сложение, вычитание и умножение выполняются без округления.
func newBigFloat(x float64) *big.Float {
	return new(big.Float).SetPrec(big.MaxPrec).SetFloat64(x)
}

func bigSub(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(big.MaxPrec).Sub(a, b)
}

func bigMul(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(big.MaxPrec).Mul(a, b)
}

// CompareDistance сравнивает квадраты расстояний от origin до a и до b:
// -1, если a ближе, +1, если дальше, 0 при точном равенстве.
func CompareDistance(origin, a, b Point) int {
	da, db := origin.SquaredDistance(a), origin.SquaredDistance(b)
	if diff := da - db; math.Abs(diff) > distErrBound*(da+db) {
		return sign(diff)
	}
	return exactCompareDistance(origin, a, b)
}

func exactCompareDistance(origin, a, b Point) int {
	if !origin.IsFinite() || !a.IsFinite() || !b.IsFinite() {
		return 0
	}
	ox, oy := newBigFloat(origin.X), newBigFloat(origin.Y)
	squared := func(p Point) *big.Float {
		dx := bigSub(newBigFloat(p.X), ox)
		dy := bigSub(newBigFloat(p.Y), oy)
		return new(big.Float).SetPrec(big.MaxPrec).Add(bigMul(dx, dx), bigMul(dy, dy))
	}
	return squared(a).Cmp(squared(b))
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// CompareAngle упорядочивает направления origin→a и origin→b против часовой
// стрелки начиная с оси +X. Совпадающие направления сравниваются по длине.
// Точный: использует только сравнения координат и Orientation.
func CompareAngle(origin, a, b Point) int {
	ha, hb := halfPlane(origin, a), halfPlane(origin, b)
	if ha != hb {
		return ha - hb
	}
	if o := Orientation(origin, a, b); o != 0 {
		return -o
	}
	da, db := origin.SquaredDistance(a), origin.SquaredDistance(b)
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	}
	return 0
}

// halfPlane: 0 для углов [0, π), 1 для [π, 2π).
func halfPlane(origin, p Point) int {
	if p.Y > origin.Y || (p.Y == origin.Y && p.X > origin.X) {
		return 0
	}
	return 1
}
