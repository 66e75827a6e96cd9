package script

// Statement is a node of the block tree.
type Statement interface {
	statement()
}

// MoveStmt moves the turtle along its heading.
type MoveStmt struct {
	Distance int
	Line     int
}

// TurnStmt rotates the turtle clockwise.
type TurnStmt struct {
	Degrees int
	Line    int
}

// RepeatStmt runs Body Count times. A nil Body marks an orphan repeat that
// had nothing to repeat at its depth.
type RepeatStmt struct {
	Count int
	Body  *Block
	Line  int
}

// Block is an ordered statement list at one scope depth.
type Block struct {
	Depth int
	Stmts []Statement
}

func (*MoveStmt) statement()   {}
func (*TurnStmt) statement()   {}
func (*RepeatStmt) statement() {}
func (*Block) statement()      {}

// Orphan reports whether the repeat has no body.
func (r *RepeatStmt) Orphan() bool { return r.Body == nil }

func (blk *Block) scope() Scope { return Scope{Depth: blk.Depth} }

// treeBuilder folds a command sequence into a block tree. The stack holds the
// currently open blocks, root first, with strictly increasing depths.
type treeBuilder struct {
	stack []*Block
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{stack: []*Block{{Depth: 0}}}
}

func (b *treeBuilder) top() *Block {
	return b.stack[len(b.stack)-1]
}

func (b *treeBuilder) add(c Command) {
	depth := c.Scope.Depth
	for len(b.stack) > 1 && c.Scope.Less(b.top().scope()) {
		b.stack = b.stack[:len(b.stack)-1]
	}
	if b.top().scope().Less(c.Scope) {
		nested := &Block{Depth: depth}
		b.top().Stmts = append(b.top().Stmts, nested)
		b.stack = append(b.stack, nested)
	}

	blk := b.top()
	switch c.Kind {
	case Move:
		blk.Stmts = append(blk.Stmts, &MoveStmt{Distance: c.Arg, Line: c.Line})
	case Turn:
		blk.Stmts = append(blk.Stmts, &TurnStmt{Degrees: c.Arg, Line: c.Line})
	case Repeat:
		rep := &RepeatStmt{Count: c.Arg, Line: c.Line}
		if len(blk.Stmts) > 0 {
			rep.Body = &Block{Depth: depth, Stmts: blk.Stmts}
		}
		blk.Stmts = []Statement{rep}
	}
}

func (b *treeBuilder) root() *Block {
	return b.stack[0]
}

// BuildTree folds a flat command sequence into its block tree.
func BuildTree(cmds []Command) *Block {
	b := newTreeBuilder()
	for _, c := range cmds {
		b.add(c)
	}
	return b.root()
}
