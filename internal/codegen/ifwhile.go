package codegen

import (
	"github.com/jcorbin/minilang/internal/ast"
	"github.com/jcorbin/minilang/internal/opcode"
)

// genIfWhile lowers an IF or WHILE statement. A WHILE is compiled as
//
//	if (cond) { do { body } while (cond) }
//
// so the loop body is entered with a single guard test and the back edge
// re-tests inline, instead of testing once on entry and again on every
// iteration.
func (g *generator) genIfWhile(stmt *ast.Statement) error {
	x, op, y := stmt.Tokens[1], stmt.Tokens[2], stmt.Tokens[3]
	alwaysTrue := op == "==" && x == y

	jumpOverBody := -1
	if !alwaysTrue {
		idx, taut := g.genCompare(x, op, y)
		if !taut {
			jumpOverBody = idx
		}
	}

	guardLen := len(g.code) - stmt.StartPos

	if err := g.genBlock(stmt.Body); err != nil {
		return err
	}

	// bodyOnlyLen must be captured here, before the back-edge test or any
	// trailing jump-over-else is emitted: the back edge always re-enters
	// right after the guard, regardless of whether an else clause follows.
	bodyOnlyLen := len(g.code) - stmt.StartPos - guardLen

	jumpBackToStart := -1
	if stmt.Kind == ast.While {
		if alwaysTrue {
			jumpBackToStart = g.emit(Instruction{Op: opcode.Jump, N: -1})
		} else {
			idx, _ := g.genCompare(x, inverseOp(op), y)
			jumpBackToStart = idx
		}
		g.code[jumpBackToStart].N = -(bodyOnlyLen + 1)
	}

	jumpOverElse := -1
	if stmt.ElseBody != nil {
		jumpOverElse = g.emit(Instruction{Op: opcode.Jump, N: -1})
	}

	totalLen := len(g.code) - stmt.StartPos - guardLen
	if jumpOverBody >= 0 {
		g.code[jumpOverBody].N = totalLen
	}

	if stmt.ElseBody != nil {
		if err := g.genBlock(stmt.ElseBody); err != nil {
			return err
		}
		elseLen := len(g.code) - stmt.StartPos - totalLen - guardLen
		g.code[jumpOverElse].N = elseLen
	}

	return nil
}
