package codegen

import (
	"github.com/jcorbin/minilang/internal/ast"
	"github.com/jcorbin/minilang/internal/lexer"
	"github.com/jcorbin/minilang/internal/opcode"
)

// genAssignExp emits "target = x op y" for op in {+,-,*,/,%}: inc/dec
// fusion when it applies, the fused ADD/SUB operand-mode family for + and
// -, and a plain load/op/store sequence for *, / and %.
func (g *generator) genAssignExp(stmt *ast.Statement) error {
	target, x, op, y := stmt.Tokens[0], stmt.Tokens[2], stmt.Tokens[3], stmt.Tokens[4]

	if fusedOp, ok := incDecOp(target, op, x, y); ok {
		g.emitIncDec(fusedOp, target)
		return nil
	}

	switch op {
	case "*", "/", "%":
		g.loadInto(1, x)
		g.loadInto(2, y)
		switch op {
		case "*":
			g.emit(Instruction{Op: opcode.MulOp, N: -1})
		case "/":
			g.emit(Instruction{Op: opcode.DivOp, N: -1})
		case "%":
			g.emit(Instruction{Op: opcode.ModOp, N: -1})
		}
		return g.storeFromReg1(stmt.Loc, target)
	case "+", "-":
		return g.genAddSub(stmt.Loc, x, op, y, target)
	}
	return nil
}

// incDecOp recognizes the "T = T + 1", "T = 1 + T", "T = T - 1" shapes that
// fuse to INC/DEC. The resulting opcode is keyed only on the operator's
// sign, not on which side the literal 1 was: "T = 1 - T" still fuses to
// DEC, computing T-1, not 1-T.
func incDecOp(target, op, x, y string) (string, bool) {
	if op != "+" && op != "-" {
		return "", false
	}
	if (target == x && y == "1") || (target == y && x == "1") {
		return op, true
	}
	return "", false
}

func (g *generator) emitIncDec(op, target string) {
	name, idx, isArray := splitIndex(target)
	if isArray {
		arrOp := opcode.IncA
		if op == "-" {
			arrOp = opcode.DecA
		}
		idxA := g.st.LookupOrCreateVariable(idx)
		arrA := g.st.LookupOrCreateArray(name, 0)
		g.emit(Instruction{Op: arrOp, N: -1, Args: []int{idxA, arrA}})
		return
	}
	varOp := opcode.IncV
	if op == "-" {
		varOp = opcode.DecV
	}
	addr := g.st.LookupOrCreateVariable(target)
	g.emit(Instruction{Op: varOp, N: -1, Args: []int{addr}})
}

// genAddSub emits "target = x op y" for op in {+,-}.
//
// The fused ADD/SUB family only has VVV, VVA, VAA, AVV, AVA and AAA
// variants (target, x, y shapes) -- there is no variant for "x is an array
// but y isn't". For "+", that shape is resolved by swapping x and y
// (addition is commutative, so this is always safe). For "-" it is not
// safe to swap (it would silently compute y-x instead of x-y), so that one
// shape falls back to the generic load/op/store sequence instead of
// fusing.
func (g *generator) genAddSub(loc lexer.Location, x, op, y, target string) error {
	_, _, xArr := splitIndex(x)
	_, _, yArr := splitIndex(y)

	if op == "-" && xArr && !yArr {
		g.loadInto(1, x)
		g.loadInto(2, y)
		g.emit(Instruction{Op: opcode.SubOp, N: -1})
		return g.storeFromReg1(loc, target)
	}

	if xArr && !yArr {
		x, y = y, x
		xArr, yArr = yArr, xArr
	}

	base := opcode.AddVVV
	if op == "-" {
		base = opcode.SubVVV
	}

	variant := 0
	switch {
	case !xArr && !yArr:
		variant = 0
	case !xArr && yArr:
		variant = 1
	case xArr && yArr:
		variant = 2
	}
	if isArrayToken(target) {
		variant += 3
	}

	args := append(append(g.varOrArrayArgs(x), g.varOrArrayArgs(y)...), g.varOrArrayArgs(target)...)
	g.emit(Instruction{Op: base + opcode.Code(variant), N: -1, Args: args})
	return nil
}
