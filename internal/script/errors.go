package script

import (
	"errors"
	"fmt"
)

var (
	ErrMissingKeyword  = errors.New("missing keyword")
	ErrMissingArgument = errors.New("missing argument")
	ErrUnknownKeyword  = errors.New("unknown keyword")
	ErrBadArgument     = errors.New("argument is not an integer")
	ErrTrailingTokens  = errors.New("unexpected trailing tokens")
)

// ParseError reports the first malformed line of a script.
type ParseError struct {
	Line   int
	Text   string
	Reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Reason, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}
