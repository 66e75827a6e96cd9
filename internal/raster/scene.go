package raster

import (
	"image"

	"github.com/vk/turtlego/internal/geometry"
)

// Snapshot is the part of the turtle state a redraw needs.
type Snapshot struct {
	Start     geometry.Vec
	Position  geometry.Vec
	Heading   geometry.Vec // unit vector along the heading
	Path      []geometry.Line
	Indicator geometry.Triangle
}

// Options toggles the overlays drawn on top of the path.
type Options struct {
	// HollowIndicator draws the heading triangle as an outline.
	HollowIndicator bool
	// Bounds draws the bounding box of all path endpoints.
	Bounds bool
	// StartMarker draws a circle of this radius around the start position.
	StartMarker float64
	// HeadingRay draws a dotted ray of this length ahead of the turtle.
	HeadingRay float64
	// RayStep is the spacing of the heading ray dots.
	RayStep float64
	// Clip limits generation to points that can land in this rectangle,
	// usually the frame bounds. The zero value disables clipping.
	Clip image.Rectangle
}

// Scene expands a snapshot into the points of one frame, path first and
// overlays last. Points may repeat. With a zero Clip they may fall anywhere
// and the surface drops them; with a Clip only points that can land inside it
// are generated, whatever the size of the path.
func Scene(s Snapshot, opts Options) []image.Point {
	if !opts.Clip.Empty() {
		return clippedScene(s, opts)
	}

	var points []image.Point
	for _, seg := range s.Path {
		points = append(points, Line(seg.A, seg.B)...)
	}

	if opts.Bounds && len(s.Path) > 0 {
		// endpoints is non-empty, so Bounding cannot fail.
		if box, err := geometry.Bounding(endpoints(s.Path)); err == nil {
			points = append(points, box.Empty()...)
		}
	}

	if opts.StartMarker > 0 {
		points = append(points, Circle(s.Start, opts.StartMarker)...)
	}

	if opts.HeadingRay > 0 {
		points = append(points, headingRay(s, opts).Dotted(rayStep(opts))...)
	}

	if opts.HollowIndicator {
		points = append(points, s.Indicator.Empty()...)
	} else {
		points = append(points, s.Indicator.SolidColor()...)
	}
	return points
}

func clippedScene(s Snapshot, opts Options) []image.Point {
	clip := opts.Clip

	var points []image.Point
	for _, seg := range s.Path {
		points = append(points, seg.SolidIn(clip)...)
	}

	if opts.Bounds && len(s.Path) > 0 {
		if tl, br, err := geometry.BoundingCorners(endpoints(s.Path)); err == nil {
			tr, bl := geometry.V(br.X, tl.Y), geometry.V(tl.X, br.Y)
			points = append(points, geometry.L(tl, tr).SolidIn(clip)...)
			points = append(points, geometry.L(tr, br).SolidIn(clip)...)
			points = append(points, geometry.L(br, bl).SolidIn(clip)...)
			points = append(points, geometry.L(bl, tl).SolidIn(clip)...)
		}
	}

	if r := opts.StartMarker; r > 0 && circleTouches(s.Start, r, clip) {
		points = append(points, Circle(s.Start, r)...)
	}

	if opts.HeadingRay > 0 {
		points = append(points, headingRay(s, opts).DottedIn(rayStep(opts), clip)...)
	}

	if opts.HollowIndicator {
		points = append(points, s.Indicator.EmptyIn(clip)...)
	} else {
		points = append(points, s.Indicator.SolidColorIn(clip)...)
	}
	return points
}

func endpoints(path []geometry.Line) []geometry.Vec {
	ends := make([]geometry.Vec, 0, 2*len(path))
	for _, seg := range path {
		ends = append(ends, seg.A, seg.B)
	}
	return ends
}

func headingRay(s Snapshot, opts Options) geometry.Line {
	return geometry.L(s.Position, s.Position.Add(s.Heading.Scale(opts.HeadingRay)))
}

func rayStep(opts Options) float64 {
	if opts.RayStep <= 0 {
		return 4
	}
	return opts.RayStep
}

// circleTouches reports whether the bounding square of the circle overlaps
// clip.
func circleTouches(origin geometry.Vec, r float64, clip image.Rectangle) bool {
	return origin.X+r >= float64(clip.Min.X)-1 && origin.X-r <= float64(clip.Max.X) &&
		origin.Y+r >= float64(clip.Min.Y)-1 && origin.Y-r <= float64(clip.Max.Y)
}
