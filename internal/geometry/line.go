package geometry

import (
	"image"
	"math"
)

// Line is the segment between A and B.
type Line struct {
	A Vec
	B Vec
}

// L is shorthand for Line{A: a, B: b}.
func L(a, b Vec) Line {
	return Line{A: a, B: b}
}

// Degenerate reports whether the line has zero length.
func (l Line) Degenerate() bool {
	return l.A == l.B
}

// Project returns the orthogonal projection of p onto the infinite line
// through A and B. A degenerate line projects every point onto A.
func (l Line) Project(p Vec) Vec {
	plane := l.A.Sub(l.B)
	lenSq := plane.LengthSquared()
	if lenSq == 0 {
		return l.A
	}
	rel := l.A.Sub(p)
	return l.A.Sub(plane.Scale(rel.Dot(plane) / lenSq))
}

// InterpolationValue returns how far along the segment the projection of p
// lies: 0 on A, 1 on B. The result is unsigned, so a projection behind A is
// indistinguishable from one ahead of it. A degenerate line yields 0.
func (l Line) InterpolationValue(p Vec) float64 {
	full := l.A.Sub(l.B).LengthSquared()
	if full == 0 {
		return 0
	}
	proj := l.Project(p)
	fromStart := l.A.Sub(proj).LengthSquared()
	return math.Sqrt(fromStart / full)
}

// Solid rasterizes the segment into lattice points, both endpoints included.
// It steps ceil(DiagonalDistance) times, so consecutive points never differ by
// more than one unit on either axis.
func (l Line) Solid() []image.Point {
	steps := math.Ceil(DiagonalDistance(l.A, l.B))
	return l.stepped(steps)
}

// Dotted is like Solid but only emits every step-th point along the same
// progress domain. A non-positive step yields nil.
func (l Line) Dotted(step float64) []image.Point {
	if step <= 0 {
		return nil
	}
	steps := math.Ceil(math.Ceil(DiagonalDistance(l.A, l.B)) / step)
	return l.stepped(steps)
}

// SolidIn returns the points of Solid that can land inside clip, without
// generating the rest. The result is the same progress sequence as Solid, cut
// to the part of the segment near clip, so runaway coordinates cost no more
// than the visible piece. An empty clip returns nil.
func (l Line) SolidIn(clip image.Rectangle) []image.Point {
	return l.steppedIn(math.Ceil(DiagonalDistance(l.A, l.B)), clip)
}

// DottedIn is Dotted restricted to clip the same way SolidIn restricts Solid.
func (l Line) DottedIn(step float64, clip image.Rectangle) []image.Point {
	if step <= 0 {
		return nil
	}
	return l.steppedIn(math.Ceil(math.Ceil(DiagonalDistance(l.A, l.B))/step), clip)
}

func (l Line) stepped(steps float64) []image.Point {
	n := int(steps)
	points := make([]image.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		progress := 0.0
		if n > 0 {
			progress = float64(i) / steps
		}
		points = append(points, LerpVec(l.A, l.B, progress).Point())
	}
	return points
}

// maxExactSteps is the largest step count whose indices are still exact in
// float64 arithmetic.
const maxExactSteps = 1 << 52

func (l Line) steppedIn(steps float64, clip image.Rectangle) []image.Point {
	if clip.Empty() {
		return nil
	}
	// A point rounds into clip only if it lies within half a unit of it; one
	// unit of slack keeps the window a strict superset.
	winMin := V(float64(clip.Min.X)-1, float64(clip.Min.Y)-1)
	winMax := V(float64(clip.Max.X), float64(clip.Max.Y))
	t0, t1, ok := l.clipRange(winMin, winMax)
	if !ok {
		return nil
	}
	if steps == 0 {
		return l.stepped(0)
	}

	if !(steps <= maxExactSteps) {
		// Indices are no longer exact: step the clipped piece on its own.
		a := clampVec(LerpVec(l.A, l.B, t0), winMin, winMax)
		b := clampVec(LerpVec(l.A, l.B, t1), winMin, winMax)
		if !a.finite() || !b.finite() {
			return nil
		}
		return L(a, b).stepped(math.Ceil(DiagonalDistance(a, b)))
	}

	first := math.Max(0, math.Ceil(t0*steps)-1)
	last := math.Min(steps, math.Floor(t1*steps)+1)
	if !(first <= last) {
		return nil
	}
	points := make([]image.Point, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		points = append(points, LerpVec(l.A, l.B, i/steps).Point())
	}
	return points
}

// clipRange returns the parameter interval [t0, t1] of the segment inside the
// box spanned by lo and hi (Liang–Barsky), or false if the segment misses it.
func (l Line) clipRange(lo, hi Vec) (float64, float64, bool) {
	d := l.B.Sub(l.A)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, l.A.X - lo.X},
		{d.X, hi.X - l.A.X},
		{-d.Y, l.A.Y - lo.Y},
		{d.Y, hi.Y - l.A.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if !(q >= 0) {
				return 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	if !(t0 <= t1) {
		return 0, 0, false
	}
	return t0, t1, true
}

func clampVec(v, lo, hi Vec) Vec {
	return V(Constrain(v.X, lo.X, hi.X), Constrain(v.Y, lo.Y, hi.Y))
}
