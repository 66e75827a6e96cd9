package geometry

import (
	"cmp"
	"fmt"
	"math"
)

// Lerp interpolates between start and end; t = 0 gives start, t = 1 gives end.
func Lerp(start, end, t float64) float64 {
	return math.FMA(start, 1-t, end*t)
}

// LerpVec interpolates both coordinates of a and b.
func LerpVec(a, b Vec, t float64) Vec {
	return Vec{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

// DiagonalDistance returns the longer of the horizontal and vertical extents
// between from and to. It is the number of unit steps a digital line needs.
func DiagonalDistance(from, to Vec) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	return math.Max(math.Abs(dx), math.Abs(dy))
}

// Constrain clamps v into [lo, hi]. It panics if lo >= hi.
func Constrain[T cmp.Ordered](v, lo, hi T) T {
	if !(lo < hi) {
		panic(fmt.Sprintf("geometry: invalid constraint range [%v, %v]", lo, hi))
	}
	return min(max(v, lo), hi)
}
