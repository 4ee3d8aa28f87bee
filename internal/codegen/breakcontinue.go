package codegen

import (
	"strconv"

	"github.com/jcorbin/minilang/internal/ast"
)

// resolveBreakContinue walks the statement tree a second time, patching
// every break/continue's placeholder OP_JUMP now that every enclosing
// while's start/end position is known.
func resolveBreakContinue(stmts []*ast.Statement, code []Instruction, whileStack []*ast.Statement) error {
	for _, stmt := range stmts {
		if stmt.Kind == ast.Break || stmt.Kind == ast.Continue {
			depth := 1
			if len(stmt.Tokens) > 1 {
				n, err := strconv.Atoi(stmt.Tokens[1])
				if err != nil {
					return err
				}
				depth = n
			}
			if depth < 1 || depth > len(whileStack) {
				return &BreakDepthError{Loc: stmt.Loc, Depth: depth, Max: len(whileStack)}
			}
			target := whileStack[len(whileStack)-depth]

			targetPos := target.EndPos
			if stmt.Kind == ast.Continue {
				targetPos = target.StartPos
			}
			code[stmt.StartPos].N = targetPos - (stmt.StartPos + 1)
		}

		if stmt.Kind == ast.While {
			whileStack = append(whileStack, stmt)
		}
		if stmt.Body != nil {
			if err := resolveBreakContinue(stmt.Body, code, whileStack); err != nil {
				return err
			}
		}
		if stmt.ElseBody != nil {
			if err := resolveBreakContinue(stmt.ElseBody, code, whileStack); err != nil {
				return err
			}
		}
		if stmt.Kind == ast.While {
			whileStack = whileStack[:len(whileStack)-1]
		}
	}
	return nil
}
