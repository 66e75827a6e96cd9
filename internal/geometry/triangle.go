package geometry

import (
	"image"
	"math"
)

// Triangle is three points in no particular winding order. Only the edge
// classification of PointInTriangle depends on the winding.
type Triangle struct {
	A Vec
	B Vec
	C Vec
}

// T is shorthand for Triangle{A: a, B: b, C: c}.
func T(a, b, c Vec) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Vertices returns A, B and C as a slice.
func (t Triangle) Vertices() []Vec {
	return []Vec{t.A, t.B, t.C}
}

// Bounds is the bounding rectangle of the three vertices.
func (t Triangle) Bounds() Rect {
	// Three vertices are never an empty set.
	r, _ := Bounding(t.Vertices())
	return r
}

// SolidColor returns every lattice point inside the triangle, edges included.
func (t Triangle) SolidColor() []image.Point {
	candidates := t.Bounds().SolidColor()
	points := candidates[:0]
	for _, p := range candidates {
		if PointInTriangle(FromPoint(p), t) {
			points = append(points, p)
		}
	}
	return points
}

// SolidColorIn returns the points of SolidColor that fall inside clip,
// enumerating only the part of the bounding rectangle that overlaps it.
func (t Triangle) SolidColorIn(clip image.Rectangle) []image.Point {
	left := math.Round(math.Min(t.A.X, math.Min(t.B.X, t.C.X)))
	right := math.Round(math.Max(t.A.X, math.Max(t.B.X, t.C.X)))
	top := math.Round(math.Min(t.A.Y, math.Min(t.B.Y, t.C.Y)))
	bottom := math.Round(math.Max(t.A.Y, math.Max(t.B.Y, t.C.Y)))

	x0 := math.Max(left, float64(clip.Min.X))
	x1 := math.Min(right, float64(clip.Max.X-1))
	y0 := math.Max(top, float64(clip.Min.Y))
	y1 := math.Min(bottom, float64(clip.Max.Y-1))
	if !(x0 <= x1) || !(y0 <= y1) {
		return nil
	}

	var points []image.Point
	for y := int(y0); y <= int(y1); y++ {
		for x := int(x0); x <= int(x1); x++ {
			p := image.Pt(x, y)
			if PointInTriangle(FromPoint(p), t) {
				points = append(points, p)
			}
		}
	}
	return points
}

// EmptyIn is Empty with every edge restricted to clip.
func (t Triangle) EmptyIn(clip image.Rectangle) []image.Point {
	var points []image.Point
	points = append(points, L(t.A, t.B).SolidIn(clip)...)
	points = append(points, L(t.B, t.C).SolidIn(clip)...)
	points = append(points, L(t.A, t.C).SolidIn(clip)...)
	return points
}

// Empty returns the three edges a→b, b→c and a→c.
func (t Triangle) Empty() []image.Point {
	var points []image.Point
	points = append(points, L(t.A, t.B).Solid()...)
	points = append(points, L(t.B, t.C).Solid()...)
	points = append(points, L(t.A, t.C).Solid()...)
	return points
}

// PointInTriangle reports whether p lies on the same side of all three
// directed edges a→b, b→c and c→a. A zero cross product counts as the
// non-negative side, so for a triangle wound clockwise on screen (interior on
// the non-negative side) vertices and edges are inside. With the opposite
// winding, boundary points are classified as outside.
func PointInTriangle(p Vec, t Triangle) bool {
	s1 := nonNegativeSide(p, t.A, t.B)
	s2 := nonNegativeSide(p, t.B, t.C)
	s3 := nonNegativeSide(p, t.C, t.A)
	return (s1 && s2 && s3) || (!s1 && !s2 && !s3)
}

func nonNegativeSide(p, a, b Vec) bool {
	return (p.X-b.X)*(a.Y-b.Y)-(a.X-b.X)*(p.Y-b.Y) >= 0
}
