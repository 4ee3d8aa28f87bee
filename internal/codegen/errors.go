package codegen

import (
	"fmt"

	"github.com/jcorbin/minilang/internal/lexer"
)

// ConstAssignError reports an attempt to store into a numeric literal.
type ConstAssignError struct {
	Loc   lexer.Location
	Token string
}

func (e *ConstAssignError) Error() string {
	return fmt.Sprintf("%v: cannot assign to constant %q", e.Loc, e.Token)
}

// BreakDepthError reports a break/continue whose depth exceeds the number
// of enclosing while loops.
type BreakDepthError struct {
	Loc   lexer.Location
	Depth int
	Max   int
}

func (e *BreakDepthError) Error() string {
	return fmt.Sprintf("%v: break/continue depth %d exceeds %d enclosing loop(s)", e.Loc, e.Depth, e.Max)
}
