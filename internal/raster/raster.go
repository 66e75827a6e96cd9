// Package raster produces the lattice points of a frame: outline generators
// that have no analytic shape of their own, and Scene, which expands a turtle
// trace into the full point set of one redraw.
package raster

import (
	"image"
	"math"

	"github.com/vk/turtlego/internal/geometry"
)

// Circle returns ceil(2πr) points evenly spaced by angle on the circle of the
// given radius. It is an outline, not a disc. A non-positive radius yields nil.
func Circle(origin geometry.Vec, radius float64) []image.Point {
	if radius <= 0 {
		return nil
	}
	surface := math.Ceil(radius * 2 * math.Pi)
	n := int(surface)
	points := make([]image.Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi / surface * float64(i)
		points = append(points, origin.Add(geometry.FromAngle(angle).Scale(radius)).Point())
	}
	return points
}

// Line is shorthand for the solid rasterization of the segment from-to.
func Line(from, to geometry.Vec) []image.Point {
	return geometry.L(from, to).Solid()
}
