package raster

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/turtlego/internal/geometry"
)

func TestCircle(t *testing.T) {
	t.Run("point count and radius", func(t *testing.T) {
		origin := geometry.V(50, 50)
		points := Circle(origin, 10)
		require.Len(t, points, int(math.Ceil(20*math.Pi)))

		assert.Equal(t, image.Pt(60, 50), points[0], "angle 0 points along +x")
		for _, p := range points {
			d := geometry.FromPoint(p).Sub(origin).Length()
			assert.InDelta(t, 10, d, 1, "point %v is off the outline", p)
		}
	})

	t.Run("fractional radius rounds the count up", func(t *testing.T) {
		assert.Len(t, Circle(geometry.V(0, 0), 0.5), 4)
	})

	t.Run("non-positive radius", func(t *testing.T) {
		assert.Nil(t, Circle(geometry.V(0, 0), 0))
		assert.Nil(t, Circle(geometry.V(0, 0), -3))
	})
}

func TestLine(t *testing.T) {
	assert.Equal(t, geometry.L(geometry.V(0, 0), geometry.V(3, 3)).Solid(), Line(geometry.V(0, 0), geometry.V(3, 3)))
}

func TestScene(t *testing.T) {
	snap := Snapshot{
		Start:    geometry.V(0, 0),
		Position: geometry.V(10, 0),
		Heading:  geometry.V(1, 0),
		Path: []geometry.Line{
			geometry.L(geometry.V(0, 0), geometry.V(10, 0)),
		},
		Indicator: geometry.T(geometry.V(12, 0), geometry.V(9, 1), geometry.V(9, -1)),
	}

	t.Run("path and filled indicator", func(t *testing.T) {
		points := Scene(snap, Options{})
		assert.Equal(t, snap.Path[0].Solid(), points[:11])
		assert.Subset(t, points, snap.Indicator.SolidColor())
	})

	t.Run("overlays", func(t *testing.T) {
		plain := Scene(snap, Options{})
		full := Scene(snap, Options{Bounds: true, StartMarker: 3, HeadingRay: 20, RayStep: 5})

		assert.Greater(t, len(full), len(plain))
		assert.Subset(t, full, Circle(snap.Start, 3))
		assert.Contains(t, full, image.Pt(30, 0), "ray end")
		assert.Contains(t, full, image.Pt(25, 0))
	})

	t.Run("hollow indicator", func(t *testing.T) {
		points := Scene(snap, Options{HollowIndicator: true})
		assert.Subset(t, points, snap.Indicator.Empty())
	})

	t.Run("clip covering everything changes nothing", func(t *testing.T) {
		opts := Options{Bounds: true, StartMarker: 3, HeadingRay: 20, RayStep: 5}
		clipped := opts
		clipped.Clip = image.Rect(-10, -10, 40, 40)
		assert.Equal(t, Scene(snap, opts), Scene(snap, clipped))
	})

	t.Run("clip bounds the work for runaway paths", func(t *testing.T) {
		far := geometry.V(1e15, 10)
		huge := Snapshot{
			Start:     geometry.V(10, 10),
			Position:  far,
			Heading:   geometry.V(1, 0),
			Path:      []geometry.Line{geometry.L(geometry.V(10, 10), far)},
			Indicator: geometry.T(far.Add(geometry.V(8, 0)), far.Add(geometry.V(-4, 4)), far.Add(geometry.V(-4, -4))),
		}
		opts := Options{Bounds: true, StartMarker: 3, HeadingRay: 1e12, Clip: image.Rect(0, 0, 64, 64)}

		var points []image.Point
		require.NotPanics(t, func() { points = Scene(huge, opts) })
		assert.Contains(t, points, image.Pt(63, 10))
		assert.Less(t, len(points), 500)

		opts.HollowIndicator = true
		require.NotPanics(t, func() { points = Scene(huge, opts) })
		assert.Less(t, len(points), 500)
	})

	t.Run("bounds need a path", func(t *testing.T) {
		empty := snap
		empty.Path = nil
		points := Scene(empty, Options{Bounds: true})
		assert.ElementsMatch(t, empty.Indicator.SolidColor(), points)
	})
}
