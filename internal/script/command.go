package script

import (
	"fmt"
	"strings"
)

// Kind is the instruction a command performs.
type Kind int

const (
	Move Kind = iota
	Turn
	Repeat
)

var kindNames = map[string]Kind{
	"move":   Move,
	"turn":   Turn,
	"repeat": Repeat,
}

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Turn:
		return "turn"
	case Repeat:
		return "repeat"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func lookupKind(word string) (Kind, bool) {
	k, ok := kindNames[strings.ToLower(word)]
	return k, ok
}

// Scope is the nesting depth of a command.
type Scope struct {
	Depth int
}

// Less orders scopes by depth.
func (s Scope) Less(o Scope) bool { return s.Depth < o.Depth }

// Command is one parsed instruction line.
type Command struct {
	Kind  Kind
	Scope Scope
	Arg   int
	Line  int // 1-based line in the source text
}

func (c Command) String() string {
	return fmt.Sprintf("%s%s %d", strings.Repeat("\t", c.Scope.Depth), c.Kind, c.Arg)
}
