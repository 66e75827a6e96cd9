package turtle

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/vk/turtlego/internal/geometry"
	"github.com/vk/turtlego/internal/script"
)

const (
	// DefaultIndicatorSize is the tip-to-center length of the heading triangle.
	DefaultIndicatorSize = 8.0
	// DefaultSegmentLimit caps the path length of one execution pass.
	DefaultSegmentLimit = 1 << 20
)

// Option configures a Turtle.
type Option func(*Turtle)

// WithIndicatorSize sets the size of the heading triangle. Non-positive
// values keep the default.
func WithIndicatorSize(size float64) Option {
	return func(t *Turtle) {
		if size > 0 {
			t.indicatorSize = size
		}
	}
}

// WithSegmentLimit caps how many segments one execution may append. Zero or
// a negative value disables the cap.
func WithSegmentLimit(limit int) Option {
	return func(t *Turtle) {
		t.segmentLimit = limit
	}
}

// Turtle is the position/heading state machine. It is not safe for
// concurrent use; the frame loop owns it.
type Turtle struct {
	start    geometry.Vec
	position geometry.Vec
	heading  int
	path     []geometry.Line

	indicatorSize float64
	segmentLimit  int
}

// New creates a turtle at start, facing heading 0.
func New(start geometry.Vec, opts ...Option) *Turtle {
	t := &Turtle{
		start:         start,
		position:      start,
		indicatorSize: DefaultIndicatorSize,
		segmentLimit:  DefaultSegmentLimit,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start is the immutable starting position.
func (t *Turtle) Start() geometry.Vec { return t.start }

// Position is the current position.
func (t *Turtle) Position() geometry.Vec { return t.position }

// Heading is the current heading in degrees, within [0, 360).
func (t *Turtle) Heading() int { return t.heading }

// Direction is the unit vector along the heading.
func (t *Turtle) Direction() geometry.Vec {
	return geometry.FromAngle(float64(t.heading) * math.Pi / 180)
}

// Path returns a copy of the segments traced so far.
func (t *Turtle) Path() []geometry.Line { return slices.Clone(t.path) }

// Segments is the number of segments in the path.
func (t *Turtle) Segments() int { return len(t.path) }

// Reset clears the path and returns to the starting position and heading 0.
func (t *Turtle) Reset() {
	t.path = t.path[:0]
	t.position = t.start
	t.heading = 0
}

// Move advances d units along the heading and records the segment.
func (t *Turtle) Move(d int) {
	next := t.position.Add(t.Direction().Scale(float64(d)))
	t.path = append(t.path, geometry.L(t.position, next))
	t.position = next
}

// Turn rotates clockwise by deg degrees; negative values turn back.
func (t *Turtle) Turn(deg int) {
	// Reduce first so deg near the int limits cannot overflow the sum.
	t.heading = normalize(t.heading + deg%360)
}

func normalize(deg int) int {
	return ((deg % 360) + 360) % 360
}

type snapshot struct {
	position geometry.Vec
	heading  int
	path     []geometry.Line
}

func (t *Turtle) snapshot() snapshot {
	return snapshot{position: t.position, heading: t.heading, path: slices.Clone(t.path)}
}

func (t *Turtle) restore(s snapshot) {
	t.position = s.position
	t.heading = s.heading
	t.path = s.path
}

// Execute resets the turtle and runs prog from the top. On failure the
// turtle is put back exactly as it was before the call and the error is
// returned; a cancelled context is returned unwrapped.
func (t *Turtle) Execute(ctx context.Context, prog *script.Program) error {
	if prog == nil {
		return fmt.Errorf("turtle: nil program")
	}
	saved := t.snapshot()
	t.Reset()
	if err := t.runBlock(ctx, prog.Root); err != nil {
		t.restore(saved)
		return err
	}
	return nil
}

func (t *Turtle) runBlock(ctx context.Context, blk *script.Block) error {
	for _, stmt := range blk.Stmts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.runStmt(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (t *Turtle) runStmt(ctx context.Context, stmt script.Statement) error {
	switch s := stmt.(type) {
	case *script.MoveStmt:
		if t.segmentLimit > 0 && len(t.path) >= t.segmentLimit {
			return &ExecutionError{Line: s.Line, Reason: fmt.Errorf("%w (%d)", ErrSegmentLimit, t.segmentLimit)}
		}
		t.Move(s.Distance)
	case *script.TurnStmt:
		t.Turn(s.Degrees)
	case *script.RepeatStmt:
		if s.Orphan() {
			return &ExecutionError{Line: s.Line, Reason: ErrOrphanRepeat}
		}
		if s.Count < 0 {
			return &ExecutionError{Line: s.Line, Reason: ErrNegativeCount}
		}
		for i := 0; i < s.Count; i++ {
			if err := t.runBlock(ctx, s.Body); err != nil {
				return err
			}
		}
	case *script.Block:
		return t.runBlock(ctx, s)
	default:
		return fmt.Errorf("turtle: unexpected statement %T", stmt)
	}
	return nil
}

// Indicator returns the heading triangle at the current position. The tip
// points along the heading; the vertices wind clockwise on screen so the
// filled triangle includes its edges.
func (t *Turtle) Indicator() geometry.Triangle {
	dir := t.Direction()
	side := dir.Perp().Scale(t.indicatorSize / 2)

	tip := t.position.Add(dir.Scale(t.indicatorSize))
	back := t.position.Sub(dir.Scale(t.indicatorSize / 2))
	return geometry.T(tip, back.Add(side), back.Sub(side))
}
