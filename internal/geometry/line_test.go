package geometry

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_Project(t *testing.T) {
	t.Run("projects onto the infinite line", func(t *testing.T) {
		l := L(V(0, 0), V(10, 0))
		assertVec(t, V(3, 0), l.Project(V(3, 5)))
		assertVec(t, V(-4, 0), l.Project(V(-4, -2)))
		assertVec(t, V(15, 0), l.Project(V(15, 7)))
	})

	t.Run("diagonal line", func(t *testing.T) {
		l := L(V(0, 0), V(10, 10))
		assertVec(t, V(5, 5), l.Project(V(10, 0)))
	})

	t.Run("degenerate line falls back to A", func(t *testing.T) {
		l := L(V(2, 3), V(2, 3))
		require.True(t, l.Degenerate())
		assert.Equal(t, V(2, 3), l.Project(V(100, -50)))
	})
}

func TestLine_InterpolationValue(t *testing.T) {
	l := L(V(0, 0), V(10, 0))

	assert.InDelta(t, 0, l.InterpolationValue(V(0, 4)), 1e-9)
	assert.InDelta(t, 0.3, l.InterpolationValue(V(3, 5)), 1e-9)
	assert.InDelta(t, 1, l.InterpolationValue(V(10, -1)), 1e-9)
	// Unsigned: a point behind A reads like one ahead of it.
	assert.InDelta(t, 0.5, l.InterpolationValue(V(-5, 0)), 1e-9)

	assert.Zero(t, L(V(1, 1), V(1, 1)).InterpolationValue(V(4, 4)))
}

func TestLine_Solid(t *testing.T) {
	t.Run("horizontal segment includes both endpoints", func(t *testing.T) {
		points := L(V(0, 0), V(10, 0)).Solid()
		require.Len(t, points, 11)
		for i, p := range points {
			assert.Equal(t, image.Pt(i, 0), p)
		}
	})

	t.Run("no gaps on a steep diagonal", func(t *testing.T) {
		points := L(V(3, 2), V(-4, 19)).Solid()
		require.Len(t, points, 18)
		assert.Equal(t, image.Pt(3, 2), points[0])
		assert.Equal(t, image.Pt(-4, 19), points[len(points)-1])
		for i := 1; i < len(points); i++ {
			d := points[i].Sub(points[i-1])
			assert.LessOrEqual(t, abs(d.X), 1, "x gap at %d", i)
			assert.LessOrEqual(t, abs(d.Y), 1, "y gap at %d", i)
		}
	})

	t.Run("fractional extent steps ceil times", func(t *testing.T) {
		points := L(V(0, 0), V(2.5, 0)).Solid()
		assert.Equal(t, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, points)
	})

	t.Run("zero length yields the single point", func(t *testing.T) {
		assert.Equal(t, []image.Point{{4, 7}}, L(V(4.2, 6.6), V(4.2, 6.6)).Solid())
	})
}

func TestLine_Dotted(t *testing.T) {
	l := L(V(0, 0), V(10, 0))

	assert.Equal(t, []image.Point{{0, 0}, {2, 0}, {4, 0}, {6, 0}, {8, 0}, {10, 0}}, l.Dotted(2))
	assert.Equal(t, l.Solid(), l.Dotted(1))
	assert.Less(t, len(l.Dotted(3)), len(l.Solid()))
	assert.Nil(t, l.Dotted(0))
	assert.Nil(t, l.Dotted(-1))
}

func TestLine_SolidIn(t *testing.T) {
	clip := image.Rect(0, 0, 64, 64)

	t.Run("segment inside clip matches Solid", func(t *testing.T) {
		l := L(V(3, 2), V(-4, 19))
		assert.Equal(t, l.Solid(), l.SolidIn(image.Rect(-10, -10, 50, 50)))
	})

	t.Run("partial segment keeps every visible point", func(t *testing.T) {
		l := L(V(-50, 5), V(150, 25))
		got := l.SolidIn(clip)

		var visible []image.Point
		for _, p := range l.Solid() {
			if p.In(clip) {
				visible = append(visible, p)
			}
		}
		require.NotEmpty(t, visible)
		assert.Subset(t, got, visible)
		assert.Subset(t, l.Solid(), got, "no point outside the Solid sequence")
		assert.Less(t, len(got), 70)
	})

	t.Run("huge segment costs only the visible piece", func(t *testing.T) {
		got := L(V(10, 10), V(1e15, 10)).SolidIn(clip)
		assert.Contains(t, got, image.Pt(10, 10))
		assert.Contains(t, got, image.Pt(63, 10))
		assert.LessOrEqual(t, len(got), 70)
	})

	t.Run("segment longer than exact float steps", func(t *testing.T) {
		got := L(V(10, 10), V(1e20, 10)).SolidIn(clip)
		assert.Contains(t, got, image.Pt(30, 10))
		assert.LessOrEqual(t, len(got), 70)
		for _, p := range got {
			assert.True(t, p.X >= -1 && p.X <= 64, "point %v far outside clip", p)
		}
	})

	t.Run("segment missing the clip", func(t *testing.T) {
		assert.Nil(t, L(V(-100, -100), V(-50, -100)).SolidIn(clip))
		assert.Nil(t, L(V(1e18, 5), V(2e18, 5)).SolidIn(clip))
	})

	t.Run("degenerate segment and empty clip", func(t *testing.T) {
		assert.Equal(t, []image.Point{{4, 7}}, L(V(4, 7), V(4, 7)).SolidIn(clip))
		assert.Nil(t, L(V(0, 0), V(10, 0)).SolidIn(image.Rectangle{}))
	})
}

func TestLine_DottedIn(t *testing.T) {
	l := L(V(0, 0), V(10, 0))
	clip := image.Rect(0, 0, 100, 100)

	assert.Equal(t, l.Dotted(2), l.DottedIn(2, clip))
	assert.Nil(t, l.DottedIn(0, clip))
	assert.LessOrEqual(t, len(L(V(0, 0), V(1e16, 0)).DottedIn(4, clip)), 30)
}

func assertVec(t *testing.T, want, got Vec) {
	t.Helper()
	assert.True(t, want.ApproxEqual(got, 1e-9), "want %v, got %v", want, got)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
