package geometry

import (
	"errors"
	"image"
	"math"
)

// ErrNoPoints is returned when a bounding box is requested for an empty set.
var ErrNoPoints = errors.New("geometry: bounding box of an empty point set")

// Size is a non-negative width and height.
type Size struct {
	Width  int
	Height int
}

// Area is Width*Height.
func (s Size) Area() int { return s.Width * s.Height }

// Rect is an axis-aligned rectangle with an integer-rounded top-left origin.
type Rect struct {
	Origin Vec
	Size   Size
}

// NewRect rounds pos to the lattice. Negative sizes are clamped to zero.
func NewRect(pos Vec, size Size) Rect {
	size.Width = max(size.Width, 0)
	size.Height = max(size.Height, 0)
	return Rect{Origin: pos.Round(), Size: size}
}

// Bounding returns the tightest rectangle covering points. The extrema are
// rounded before the size is taken, so the rectangle always sits on the
// lattice.
func Bounding(points []Vec) (Rect, error) {
	tl, br, err := BoundingCorners(points)
	if err != nil {
		return Rect{}, err
	}
	size := Size{
		Width:  int(br.X - tl.X),
		Height: int(br.Y - tl.Y),
	}
	return Rect{Origin: tl, Size: size}, nil
}

// BoundingCorners returns the rounded top-left and bottom-right extrema of
// points without converting the extent to integers, so it is safe for
// coordinates far outside the int range.
func BoundingCorners(points []Vec) (tl, br Vec, err error) {
	if len(points) == 0 {
		return Vec{}, Vec{}, ErrNoPoints
	}
	b := bounds{
		top:    math.Inf(1),
		bottom: math.Inf(-1),
		left:   math.Inf(1),
		right:  math.Inf(-1),
	}
	for _, p := range points {
		b.wrap(p)
	}
	return V(b.left, b.top).Round(), V(b.right, b.bottom).Round(), nil
}

type bounds struct {
	top, bottom, left, right float64
}

func (b *bounds) wrap(p Vec) {
	b.left = math.Min(b.left, p.X)
	b.right = math.Max(b.right, p.X)
	b.top = math.Min(b.top, p.Y)
	b.bottom = math.Max(b.bottom, p.Y)
}

// BottomRight is the corner opposite the origin.
func (r Rect) BottomRight() Vec {
	return r.Origin.Add(V(float64(r.Size.Width), float64(r.Size.Height)))
}

// Corners returns top-left, top-right, bottom-right and bottom-left.
func (r Rect) Corners() (tl, tr, br, bl Vec) {
	br = r.BottomRight()
	tr = V(br.X, r.Origin.Y)
	bl = V(r.Origin.X, br.Y)
	return r.Origin, tr, br, bl
}

// SolidColor enumerates every lattice point of the rectangle, row by row,
// with both edges included.
func (r Rect) SolidColor() []image.Point {
	start := r.Origin.Point()
	end := start.Add(image.Pt(r.Size.Width, r.Size.Height))
	points := make([]image.Point, 0, (r.Size.Width+1)*(r.Size.Height+1))
	for y := start.Y; y <= end.Y; y++ {
		for x := start.X; x <= end.X; x++ {
			points = append(points, image.Pt(x, y))
		}
	}
	return points
}

// Empty returns the outline of the rectangle, walking the corners clockwise
// from the top-left one.
func (r Rect) Empty() []image.Point {
	a, b, c, d := r.Corners()
	var points []image.Point
	points = append(points, L(a, b).Solid()...)
	points = append(points, L(b, c).Solid()...)
	points = append(points, L(c, d).Solid()...)
	points = append(points, L(d, a).Solid()...)
	return points
}
