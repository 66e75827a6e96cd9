package script

import (
	"slices"
	"strconv"
	"strings"
)

// DefaultIndent is the indent marker used when none is configured.
const DefaultIndent = "\t"

// Program is the result of a successful parse.
type Program struct {
	Commands []Command
	Root     *Block
}

// Equal reports whether two programs were parsed from equivalent text. The
// tree is a pure function of the command sequence, so comparing commands is
// enough.
func (p *Program) Equal(o *Program) bool {
	if p == nil || o == nil {
		return p == o
	}
	return slices.Equal(p.Commands, o.Commands)
}

// Len is the number of commands in the program.
func (p *Program) Len() int {
	return len(p.Commands)
}

// Option configures a Parser.
type Option func(*Parser)

// WithIndent sets the string counted as one level of scope depth. An empty
// marker keeps the default.
func WithIndent(marker string) Option {
	return func(p *Parser) {
		if marker != "" {
			p.indent = marker
		}
	}
}

// Parser turns script text into programs. It holds no state between calls.
type Parser struct {
	indent string
}

// NewParser creates a parser with the given options applied.
func NewParser(opts ...Option) *Parser {
	p := &Parser{indent: DefaultIndent}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is shorthand for NewParser(opts...).Parse(text).
func Parse(text string, opts ...Option) (*Program, error) {
	return NewParser(opts...).Parse(text)
}

// Parse parses a whole script. It either returns a complete program or the
// first *ParseError; a bad line never yields a partial program.
func (p *Parser) Parse(text string) (*Program, error) {
	var cmds []Command
	for i, raw := range strings.Split(text, "\n") {
		cmd, ok, err := p.parseLine(i+1, raw)
		if err != nil {
			return nil, err
		}
		if ok {
			cmds = append(cmds, cmd)
		}
	}
	return &Program{Commands: cmds, Root: BuildTree(cmds)}, nil
}

// parseLine returns ok=false for lines that carry no instruction.
func (p *Parser) parseLine(n int, raw string) (Command, bool, error) {
	line := strings.TrimRight(raw, "\r")
	if strings.TrimSpace(line) == "" {
		return Command{}, false, nil
	}

	depth := 0
	rest := line
	for strings.HasPrefix(rest, p.indent) {
		depth++
		rest = rest[len(p.indent):]
	}

	fail := func(reason error) (Command, bool, error) {
		return Command{}, false, &ParseError{Line: n, Text: strings.TrimSpace(line), Reason: reason}
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		// Only indent markers, possible with a non-blank marker.
		return fail(ErrMissingKeyword)
	}
	if isComment(fields[0]) {
		return Command{}, false, nil
	}

	kind, known := lookupKind(fields[0])
	if !known {
		if _, err := strconv.Atoi(fields[0]); err == nil {
			return fail(ErrMissingKeyword)
		}
		return fail(ErrUnknownKeyword)
	}
	if len(fields) < 2 || isComment(fields[1]) {
		return fail(ErrMissingArgument)
	}
	arg, err := strconv.Atoi(fields[1])
	if err != nil {
		return fail(ErrBadArgument)
	}
	if len(fields) > 2 && !isComment(fields[2]) {
		return fail(ErrTrailingTokens)
	}

	return Command{Kind: kind, Scope: Scope{Depth: depth}, Arg: arg, Line: n}, true, nil
}

func isComment(token string) bool {
	return strings.HasPrefix(token, "#")
}
