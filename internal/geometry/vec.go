package geometry

import (
	"image"
	"math"
)

// Vec is a point or direction in the plane.
type Vec struct {
	X float64
	Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at the given angle in radians.
func FromAngle(radians float64) Vec {
	sin, cos := math.Sincos(radians)
	return Vec{X: cos, Y: sin}
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// LengthSquared is the squared euclidean length of v.
func (v Vec) LengthSquared() float64 { return v.Dot(v) }

func (v Vec) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Round rounds both coordinates half away from zero.
func (v Vec) Round() Vec {
	return Vec{math.Round(v.X), math.Round(v.Y)}
}

// Point converts v to the nearest lattice point.
func (v Vec) Point() image.Point {
	r := v.Round()
	return image.Pt(int(r.X), int(r.Y))
}

// Perp returns v rotated by 90 degrees clockwise on screen.
func (v Vec) Perp() Vec { return Vec{-v.Y, v.X} }

// ApproxEqual reports whether v and o differ by at most eps on each axis.
func (v Vec) ApproxEqual(o Vec, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// FromPoint converts a lattice point back into a Vec.
func FromPoint(p image.Point) Vec {
	return Vec{float64(p.X), float64(p.Y)}
}

func (v Vec) finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
