package geometry

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clockwise on screen: right along the top edge, then down-left.
var screenClockwise = T(V(0, 0), V(10, 0), V(0, 10))

func TestPointInTriangle(t *testing.T) {
	tri := screenClockwise

	t.Run("vertices are inside", func(t *testing.T) {
		for _, v := range tri.Vertices() {
			assert.True(t, PointInTriangle(v, tri), "vertex %v", v)
		}
	})

	t.Run("edge midpoints are inside", func(t *testing.T) {
		for _, e := range []Line{L(tri.A, tri.B), L(tri.B, tri.C), L(tri.C, tri.A)} {
			mid := LerpVec(e.A, e.B, 0.5)
			assert.True(t, PointInTriangle(mid, tri), "midpoint %v", mid)
		}
	})

	t.Run("interior and exterior", func(t *testing.T) {
		assert.True(t, PointInTriangle(V(2, 2), tri))
		assert.False(t, PointInTriangle(V(6, 6), tri))
		assert.False(t, PointInTriangle(V(-1, 5), tri))
		assert.False(t, PointInTriangle(V(1000, -1000), tri))
	})

	t.Run("opposite winding keeps the interior", func(t *testing.T) {
		reversed := T(tri.A, tri.C, tri.B)
		assert.True(t, PointInTriangle(V(2, 2), reversed))
		assert.False(t, PointInTriangle(V(1000, -1000), reversed))
		// The zero cross product on an edge breaks the agreement.
		assert.False(t, PointInTriangle(V(5, 0), reversed))
	})
}

func TestTriangle_SolidColor(t *testing.T) {
	tri := T(V(0, 0), V(2, 0), V(0, 2))
	assert.ElementsMatch(t, []image.Point{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1},
		{0, 2},
	}, tri.SolidColor())
}

func TestTriangle_SolidColorIn(t *testing.T) {
	t.Run("enclosing clip matches SolidColor", func(t *testing.T) {
		assert.Equal(t, screenClockwise.SolidColor(), screenClockwise.SolidColorIn(image.Rect(-5, -5, 20, 20)))
	})

	t.Run("partial clip", func(t *testing.T) {
		clip := image.Rect(0, 0, 5, 5)
		var want []image.Point
		for _, p := range screenClockwise.SolidColor() {
			if p.In(clip) {
				want = append(want, p)
			}
		}
		assert.ElementsMatch(t, want, screenClockwise.SolidColorIn(clip))
	})

	t.Run("far away triangle", func(t *testing.T) {
		far := T(V(1e18, 1e18), V(1e18+8, 1e18), V(1e18, 1e18+8))
		assert.Nil(t, far.SolidColorIn(image.Rect(0, 0, 64, 64)))
		assert.Nil(t, far.EmptyIn(image.Rect(0, 0, 64, 64)))
	})
}

func TestTriangle_EmptyIn(t *testing.T) {
	assert.Equal(t, screenClockwise.Empty(), screenClockwise.EmptyIn(image.Rect(-1, -1, 20, 20)))
}

func TestTriangle_Empty(t *testing.T) {
	points := screenClockwise.Empty()
	assert.Len(t, points, 11*3)
	assert.Equal(t, image.Pt(0, 0), points[0])
	assert.Equal(t, image.Pt(10, 0), points[10])
	assert.Equal(t, image.Pt(0, 10), points[len(points)-1])
}

func TestConstrain(t *testing.T) {
	assert.Equal(t, 5, Constrain(5, 0, 10))
	assert.Equal(t, 0, Constrain(-3, 0, 10))
	assert.Equal(t, 10.0, Constrain(12.5, 0.0, 10.0))
	assert.Panics(t, func() { Constrain(1, 3, 3) })
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 2.0, Lerp(2, 8, 0))
	assert.Equal(t, 8.0, Lerp(2, 8, 1))
	assert.InDelta(t, 5.0, Lerp(2, 8, 0.5), 1e-12)
	assert.Equal(t, 17.0, DiagonalDistance(V(3, 2), V(-4, 19)))
}
